package orders

import "time"

type Order struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	CustomerID string `gorm:"type:char(36);not null;index:ix_orders_customer_id"`

	Status        string `gorm:"type:varchar(32);not null;index:ix_orders_status"`
	AmountCents   int    `gorm:"not null"` // snapshot of sum(unit_price * qty) at checkout
	Currency      string `gorm:"type:char(3);not null;default:INR"`
	Paid          bool   `gorm:"not null;default:false"`
	PaymentMethod string `gorm:"type:varchar(32);not null"`

	// shipping address snapshot
	FirstName string  `gorm:"type:varchar(100);not null"`
	LastName  string  `gorm:"type:varchar(100);not null"`
	Street    string  `gorm:"type:varchar(255);not null"`
	City      string  `gorm:"type:varchar(100);not null"`
	State     string  `gorm:"type:varchar(100);not null"`
	Zip       string  `gorm:"type:varchar(20);not null"`
	Country   string  `gorm:"type:varchar(100);not null"`
	Phone     string  `gorm:"type:varchar(32);not null"`
	Email     *string `gorm:"type:varchar(255)"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null;index:ix_orders_created_at"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }

// CustomerName is the concatenated shipping name, used by the free-text search.
func (o Order) CustomerName() string {
	if o.FirstName == "" {
		return o.LastName
	}
	if o.LastName == "" {
		return o.FirstName
	}
	return o.FirstName + " " + o.LastName
}

type OrderItem struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	OrderID   string `gorm:"type:char(36);not null;index:ix_order_items_order_id"`
	ProductID string `gorm:"type:char(36);index:ix_order_items_product_id"`
	SKU       string `gorm:"type:varchar(64)"`

	Name           string  `gorm:"type:varchar(255);not null"` // name snapshot
	UnitPriceCents int     `gorm:"not null"`                   // price snapshot
	Quantity       int     `gorm:"not null"`
	Size           *string `gorm:"type:varchar(16)"`
	ImageURL       *string `gorm:"type:varchar(512)"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (OrderItem) TableName() string { return "order_items" }

// Timeline entry kinds.
const (
	TimelineStatusChange = "status_change"
	TimelineNote         = "note"
	TimelineEvent        = "event"
)

// ActorSystem marks timeline and ledger entries written by the backend itself.
const ActorSystem = "system"

type TimelineEntry struct {
	ID      string `gorm:"type:char(36);primaryKey"`
	OrderID string `gorm:"type:char(36);not null;index:ix_order_timeline_order_id"`

	Kind       string  `gorm:"type:varchar(16);not null"`
	FromStatus *string `gorm:"type:varchar(32)"` // status_change only
	ToStatus   *string `gorm:"type:varchar(32)"` // status_change only
	Actor      string  `gorm:"type:varchar(64);not null"`
	Note       *string `gorm:"type:varchar(500)"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (TimelineEntry) TableName() string { return "order_timeline" }
