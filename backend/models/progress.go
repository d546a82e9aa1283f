package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord tracks one user's standing on one topic.
// Unique per (user, subject, topic).
type ProgressRecord struct {
	gorm.Model
	UserID      string  `gorm:"index:idx_progress_triple,unique;not null"`
	Subject     string  `gorm:"index:idx_progress_triple,unique;not null"`
	Topic       string  `gorm:"index:idx_progress_triple,unique;not null"`
	Completed   bool    `gorm:"default:false"`
	BestScore   float64 `gorm:"default:0"` // 0-100, never decreases
	ChatCount   int     `gorm:"default:0"` // never decreases
	LastUpdated time.Time
}

// TopicProgress is the per-topic view handed to the aggregator and clients.
type TopicProgress struct {
	Completed bool    `json:"completed"`
	BestScore float64 `json:"best_score"`
	ChatCount int     `json:"chat_count"`
}

// ProgressUpdate carries a partial update for UpsertProgress. Nil fields
// are left untouched.
type ProgressUpdate struct {
	Completed *bool
	BestScore *float64
	ChatCount *int
}
