package dto

import "time"

type QuizResultSummaryDTO struct {
	ID         uint      `json:"id"`
	SessionID  string    `json:"session_id"`
	Name       string    `json:"name"`
	TargetRole string    `json:"target_role"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Readiness  int       `json:"readiness"`
	Tier       string    `json:"tier"`
	CreatedAt  time.Time `json:"created_at"`
}

type InterviewRecordSummaryDTO struct {
	ID         uint      `json:"id"`
	SessionID  string    `json:"session_id"`
	Name       string    `json:"name"`
	TargetRole string    `json:"target_role"`
	Turns      int       `json:"turns"`
	Score      *float64  `json:"score,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type InterviewRecordDetailDTO struct {
	InterviewRecordSummaryDTO
	Transcript []InterviewTurnDTO `json:"transcript"`
	Strengths  []string           `json:"strengths"`
	Weaknesses []string           `json:"weaknesses"`
	Advice     string             `json:"advice"`
}
