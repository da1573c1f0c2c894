package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Pilot is a crew member registered by an account
type Pilot struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	OwnerID       string    `gorm:"column:owner_id;type:varchar(36);not null;index"`
	Name          string    `gorm:"column:name;type:varchar(200);not null"`
	LicenseNumber string    `gorm:"column:license_number;type:varchar(50);not null"`
	Rating        *string   `gorm:"column:rating;type:varchar(50)"`
	TotalHours    *float64  `gorm:"column:total_hours"`
	ContactNumber *string   `gorm:"column:contact_number;type:varchar(30)"`
	Email         *string   `gorm:"column:email;type:varchar(254)"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner Account `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}

func (p *Pilot) BeforeCreate(tx *gormlib.DB) error {
	assignID(&p.ID)
	return nil
}
