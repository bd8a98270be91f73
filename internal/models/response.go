package models

import "time"

type Response struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MesaID    uint      `gorm:"not null;index" json:"mesa_id"`
	CardID    uint      `gorm:"not null" json:"card_id"`
	MemberID  uint      `gorm:"not null" json:"member_id"`
	Text      string    `gorm:"type:text" json:"text"`
	AudioURL  string    `gorm:"size:512" json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteRecord is the persistence-sink copy of a vote. The authoritative
// tally lives in memory for the round's lifetime; these rows are
// fire-and-forget.
type VoteRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MesaID      uint      `gorm:"not null;index" json:"mesa_id"`
	VoterID     uint      `gorm:"not null" json:"voter_id"`
	CandidateID uint      `gorm:"not null" json:"candidate_id"`
	Value       int       `gorm:"not null" json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoundResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MesaID    uint      `gorm:"not null;index" json:"mesa_id"`
	CardID    uint      `gorm:"not null" json:"card_id"`
	Mode      string    `gorm:"size:20;not null" json:"mode"`
	Scores    JSONMap   `gorm:"type:jsonb" json:"scores"`
	CreatedAt time.Time `json:"created_at"`
}
