package users

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           string  `gorm:"type:char(36);primaryKey"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash []byte  `gorm:"type:varbinary(72);not null"`
	FirstName    *string `gorm:"type:varchar(100)"`
	LastName     *string `gorm:"type:varchar(100)"`
	Role         string  `gorm:"type:varchar(16);not null;default:customer"`
	Blocked      bool    `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (User) TableName() string { return "users" }
