package newsletter

import "time"

const (
	StatusDraft = "draft"
	StatusSent  = "sent"
)

type Newsletter struct {
	ID       string `gorm:"type:char(36);primaryKey"`
	Subject  string `gorm:"type:varchar(255);not null"`
	HTMLBody string `gorm:"type:mediumtext;not null"`
	TextBody string `gorm:"type:mediumtext"`

	Status      string     `gorm:"type:varchar(16);not null;default:draft"`
	SentAt      *time.Time `gorm:"type:datetime(3)"`
	SentCount   int        `gorm:"not null;default:0"`
	FailedCount int        `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Newsletter) TableName() string { return "newsletters" }

type Subscriber struct {
	ID         string  `gorm:"type:char(36);primaryKey"`
	Email      string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_subscribers_email"`
	Name       *string `gorm:"type:varchar(200)"`
	Subscribed bool    `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Subscriber) TableName() string { return "newsletter_subscribers" }
