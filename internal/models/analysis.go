package models

import "time"

type ResponseAnalysis struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ResponseID   uint      `gorm:"index" json:"response_id"`
	MesaID       uint      `gorm:"not null;index" json:"mesa_id"`
	MemberID     uint      `gorm:"not null" json:"member_id"`
	Creativity   int       `gorm:"not null" json:"creativity"`
	Humor        int       `gorm:"not null" json:"humor"`
	Authenticity int       `gorm:"not null" json:"authenticity"`
	Virality     int       `gorm:"not null" json:"virality"`
	Category     string    `gorm:"size:50" json:"category"`
	Feedback     string    `gorm:"type:text" json:"feedback"`
	CreatedAt    time.Time `json:"created_at"`
}
