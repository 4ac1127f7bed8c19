package model

import (
	"time"

	"gorm.io/gorm"
)

// InterviewRecord is a finished mock interview together with its feedback.
type InterviewRecord struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	SessionID  string          `json:"session_id" gorm:"size:36;not null;index"`
	Name       string          `json:"name" gorm:"not null;index"`
	TargetRole string          `json:"target_role" gorm:"not null"`
	Turns      int             `json:"turns"`
	Transcript []InterviewTurn `json:"transcript" gorm:"serializer:json"`
	Score      *float64        `json:"score,omitempty"`
	Strengths  []string        `json:"strengths" gorm:"serializer:json"`
	Weaknesses []string        `json:"weaknesses" gorm:"serializer:json"`
	Advice     string          `json:"advice"`
	Status     string          `json:"status" gorm:"default:'completed'"` // "completed", "feedback_failed"
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

const (
	InterviewStatusCompleted      = "completed"
	InterviewStatusFeedbackFailed = "feedback_failed"
)
