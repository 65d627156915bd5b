package entities

import (
	"github.com/google/uuid"
	"time"
)

type Donation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID    uuid.UUID  `json:"donor_id"`
	ReceptorID *uuid.UUID `json:"receptor_id,omitempty"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	Item       string     `json:"item"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate time.Time  `json:"expiry_date"`
	Status     string     `json:"status"` // pending, accepted, in_transit, received, expired, cancelled
	ImageURL   string     `json:"image_url,omitempty"`

	Donor    *User  `gorm:"foreignKey:DonorID"`
	Receptor *User  `gorm:"foreignKey:ReceptorID"`
	Driver   *User  `gorm:"foreignKey:DriverID"`
	Route    *Route `gorm:"foreignKey:DonationID"`
	Timestamp
}
