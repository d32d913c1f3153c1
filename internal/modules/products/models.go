package products

import "time"

type Category struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_categories_name"`
	Slug      string    `gorm:"type:varchar(120);not null;uniqueIndex:ux_categories_slug"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID         string    `gorm:"type:char(36);primaryKey"`
	CategoryID string    `gorm:"type:char(36);not null;index:ix_subcategories_category_id"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Slug       string    `gorm:"type:varchar(120);not null;uniqueIndex:ux_subcategories_slug"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt  time.Time `gorm:"type:datetime(3);not null"`
}

func (Subcategory) TableName() string { return "subcategories" }

type Product struct {
	ID            string  `gorm:"type:char(36);primaryKey"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Slug          string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_products_slug"`
	Description   string  `gorm:"type:text"`
	PriceCents    int     `gorm:"not null"`
	Currency      string  `gorm:"type:char(3);not null;default:INR"`
	Stock         int     `gorm:"not null;default:0"` // mutated only through inventory.Service
	CategoryID    string  `gorm:"type:char(36);not null;index:ix_products_category_id"`
	SubcategoryID *string `gorm:"type:char(36);index:ix_products_subcategory_id"`
	Active        bool    `gorm:"not null;default:true"`
	Bestseller    bool    `gorm:"not null;default:false"`

	Images []ProductImage `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Product) TableName() string { return "products" }

type ProductImage struct {
	ID         string    `gorm:"type:char(36);primaryKey"`
	ProductID  string    `gorm:"type:char(36);not null;index:ix_product_images_product_id"`
	StorageKey string    `gorm:"type:varchar(512);not null"`
	URL        string    `gorm:"type:varchar(512);not null"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
}

func (ProductImage) TableName() string { return "product_images" }
