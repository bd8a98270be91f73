package models

import "time"

type Mesa struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Code      string       `gorm:"size:64;uniqueIndex" json:"code"`
	Name      string       `gorm:"size:255;not null" json:"name"`
	Status    string       `gorm:"size:20;not null;default:'active'" json:"status"`
	Members   []MesaMember `gorm:"foreignKey:MesaID" json:"members,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

const (
	MesaStatusActive = "active"
	MesaStatusClosed = "closed"
)

type MesaMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	MesaID   uint      `gorm:"not null;index" json:"mesa_id"`
	Nickname string    `gorm:"size:100;not null" json:"nickname"`
	WebToken string    `gorm:"size:64;index" json:"web_token,omitempty"`
	Vibe     string    `gorm:"size:50;default:'delulu'" json:"vibe"`
	Points   int       `gorm:"not null;default:0" json:"points"`
	JoinedAt time.Time `json:"joined_at"`
}
