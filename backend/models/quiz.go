package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is an append-only log entry, one per quiz submission.
type QuizAttempt struct {
	gorm.Model
	UserID        string  `gorm:"index;not null"`
	Subject       string  `gorm:"index"`
	Topic         string
	Score         float64
	QuestionsData string // JSON snapshot of the quiz as presented
	AnswersData   string // JSON of the submitted answer indices
	AttemptDate   time.Time
}

// ChatSession is an append-only log entry, one per tutor exchange.
type ChatSession struct {
	gorm.Model
	UserID       string `gorm:"index;not null"`
	Subject      string
	Topic        string
	MessageCount int
	SessionDate  time.Time
}
