package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult is the persisted outcome of one diagnostic quiz.
type QuizResult struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SessionID  string         `json:"session_id" gorm:"size:36;not null;index"`
	Name       string         `json:"name" gorm:"not null;index"`
	TargetRole string         `json:"target_role" gorm:"not null"`
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Readiness  int            `json:"readiness"`
	Tier       string         `json:"tier" gorm:"size:16"`
	Answers    []*int         `json:"answers" gorm:"serializer:json"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
