package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Account is a company account. Every plane, pilot and trip belongs to one account.
type Account struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	CompanyName  string    `gorm:"column:company_name;type:varchar(200);not null"`
	Email        string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

func (a *Account) BeforeCreate(tx *gormlib.DB) error {
	assignID(&a.ID)
	return nil
}
