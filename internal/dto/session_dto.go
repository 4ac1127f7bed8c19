package dto

import "time"

type SessionDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	TargetRole        string    `json:"target_role"`
	View              string    `json:"view"`
	ShowsNav          bool      `json:"shows_nav"`
	QuizCompleted     bool      `json:"quiz_completed"`
	Score             *int      `json:"score,omitempty"`
	HasLearningPath   bool      `json:"has_learning_path"`
	InterviewStarted  bool      `json:"interview_started"`
	InterviewFinished bool      `json:"interview_finished"`
	CreatedAt         time.Time `json:"created_at"`
}

// QuizQuestionDTO never carries the correct answer.
type QuizQuestionDTO struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizDTO struct {
	SessionID  string            `json:"session_id"`
	TargetRole string            `json:"target_role"`
	Questions  []QuizQuestionDTO `json:"questions"`
}

type QuizResultDTO struct {
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Readiness int    `json:"readiness"`
	Tier      string `json:"tier"`
	Correct   []bool `json:"correct"`
	View      string `json:"view"`
}

type SkillScoreDTO struct {
	Subject  string `json:"subject"`
	Score    int    `json:"score"`
	FullMark int    `json:"full_mark"`
}

type GrowthPointDTO struct {
	Name      string `json:"name"`
	Readiness int    `json:"readiness"`
}

type LearningModuleDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Type        string `json:"type"`
}

type LearningPathDTO struct {
	Role         string              `json:"role"`
	Modules      []LearningModuleDTO `json:"modules"`
	CareerAdvice string              `json:"career_advice"`
}

type DashboardDTO struct {
	Name          string           `json:"name"`
	TargetRole    string           `json:"target_role"`
	QuizCompleted bool             `json:"quiz_completed"`
	Score         int              `json:"score"`
	Total         int              `json:"total"`
	Readiness     int              `json:"readiness"`
	Tier          string           `json:"tier"`
	Skills        []SkillScoreDTO  `json:"skills"`
	Growth        []GrowthPointDTO `json:"growth"`
	LearningPath  *LearningPathDTO `json:"learning_path,omitempty"`
}

type InterviewTurnDTO struct {
	Speaker string `json:"role"`
	Text    string `json:"text"`
}

type InterviewFeedbackDTO struct {
	Score      float64  `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Advice     string   `json:"advice"`
}

type InterviewDTO struct {
	Reply         string                `json:"reply,omitempty"`
	Transcript    []InterviewTurnDTO    `json:"transcript"`
	Finished      bool                  `json:"finished"`
	Feedback      *InterviewFeedbackDTO `json:"feedback,omitempty"`
	RecordID      *uint                 `json:"record_id,omitempty"`
	AnswerCeiling int                   `json:"answer_ceiling"`
}

type MentorDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
}

type MentorsDTO struct {
	TargetRole string      `json:"target_role"`
	Mentors    []MentorDTO `json:"mentors"`
}
