package gorm

import (
	"time"

	"charter-ops/hangar/internal/constants"

	gormlib "gorm.io/gorm"
)

// Trip is a scheduled flight between two airports.
// Estimated fields are derived server-side and never supplied by clients.
type Trip struct {
	ID                   string               `gorm:"column:id;primaryKey;type:varchar(36)"`
	OwnerID              string               `gorm:"column:owner_id;type:varchar(36);not null;index"`
	PlaneID              string               `gorm:"column:plane_id;type:varchar(36);not null;index"`
	PilotID              *string              `gorm:"column:pilot_id;type:varchar(36);index"`
	DepartureAirport     string               `gorm:"column:departure_airport;type:varchar(4);not null"`
	ArrivalAirport       string               `gorm:"column:arrival_airport;type:varchar(4);not null"`
	DepartureTime        time.Time            `gorm:"column:departure_time;not null"`
	EstimatedArrivalTime time.Time            `gorm:"column:estimated_arrival_time;not null"`
	ActualDepartureTime  *time.Time           `gorm:"column:actual_departure_time"`
	ActualArrivalTime    *time.Time           `gorm:"column:actual_arrival_time"`
	Status               constants.TripStatus `gorm:"column:status;type:varchar(16);not null;index"`
	EstimatedFuelCost    int64                `gorm:"column:estimated_fuel_cost;not null"`
	EstimatedTotalCost   int64                `gorm:"column:estimated_total_cost;not null"`
	CreatedAt            time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	Owner Account `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Plane Plane   `gorm:"foreignKey:PlaneID;constraint:OnDelete:RESTRICT"`
	Pilot *Pilot  `gorm:"foreignKey:PilotID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) BeforeCreate(tx *gormlib.DB) error {
	assignID(&t.ID)
	return nil
}

// AllModels lists every model for AutoMigrate, parents first
func AllModels() []interface{} {
	return []interface{}{&Account{}, &Plane{}, &Pilot{}, &Trip{}}
}
