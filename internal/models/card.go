package models

import (
	"time"

	"gorm.io/gorm"
)

type Card struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	HostID      uint           `gorm:"index" json:"host_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Mode        string         `gorm:"size:20;not null;default:'individual'" json:"mode"`
	Variables   JSONMap        `gorm:"type:jsonb" json:"variables,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	CardModeIndividual = "individual"
	CardModeDuo        = "duo"
	CardModeGroup      = "group"
)

// NormalizeMode maps unknown or empty modes to individual.
func NormalizeMode(mode string) string {
	switch mode {
	case CardModeIndividual, CardModeDuo, CardModeGroup:
		return mode
	default:
		return CardModeIndividual
	}
}
