package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Plane is an aircraft registered by an account
type Plane struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	OwnerID      string    `gorm:"column:owner_id;type:varchar(36);not null;uniqueIndex:idx_planes_owner_tail,priority:1"`
	TailNumber   string    `gorm:"column:tail_number;type:varchar(20);not null;uniqueIndex:idx_planes_owner_tail,priority:2"`
	Model        string    `gorm:"column:model;type:varchar(100);not null"`
	Manufacturer string    `gorm:"column:manufacturer;type:varchar(100);not null"`
	Nickname     *string   `gorm:"column:nickname;type:varchar(100)"`
	NumEngines   int       `gorm:"column:num_engines;not null;default:2"`
	NumSeats     int       `gorm:"column:num_seats;not null;default:20"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner Account `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Plane) TableName() string {
	return "planes"
}

func (p *Plane) BeforeCreate(tx *gormlib.DB) error {
	assignID(&p.ID)
	return nil
}
