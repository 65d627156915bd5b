package entities

import (
	"github.com/google/uuid"
	"time"
)

type Route struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"donation_id"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	Status     string     `json:"status"` // pending, in_progress, completed, cancelled

	// Address snapshots taken when the route was computed
	OriginAddress      string `json:"origin_address"`
	DestinationAddress string `json:"destination_address"`

	DistanceText string     `json:"distance_text"`
	DurationText string     `json:"duration_text"`
	RouteSummary string     `json:"route_summary"`
	MapsLink     string     `json:"maps_link"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	Donation *Donation `gorm:"foreignKey:DonationID"`
	Driver   *User     `gorm:"foreignKey:DriverID"`
	Timestamp
}
