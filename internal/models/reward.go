package models

import "time"

type RewardCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type Reward struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Kind        string    `gorm:"size:20;not null;default:'other'" json:"kind"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:512" json:"url,omitempty"`
	Tier        int       `gorm:"not null;default:1" json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	RewardKindPlaylist = "playlist"
	RewardKindFilter   = "filter"
	RewardKindDocument = "document"
	RewardKindOther    = "other"
)

type RewardGrant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MesaID    uint      `gorm:"not null;index" json:"mesa_id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	RewardID  uint      `json:"reward_id,omitempty"`
	Kind      string    `gorm:"size:20" json:"kind"`
	Name      string    `gorm:"size:255" json:"name"`
	Feedback  string    `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
