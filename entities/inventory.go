package entities

import (
	"github.com/google/uuid"
)

type InventoryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceptorID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_inventory_stock" json:"receptor_id"`
	Item       string    `gorm:"uniqueIndex:idx_inventory_stock" json:"item"`
	Unit       string    `gorm:"uniqueIndex:idx_inventory_stock" json:"unit"`
	Quantity   float64   `json:"quantity"`
	Location   string    `json:"location,omitempty"`

	Receptor *User `gorm:"foreignKey:ReceptorID"`
	Timestamp
}
