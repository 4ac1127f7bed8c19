package model

// Content produced by the generation service. These are not tables; they
// live in a session and are embedded as JSON in history rows.

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type LearningModuleType string

const (
	ModuleLesson  LearningModuleType = "lesson"
	ModuleProject LearningModuleType = "project"
	ModuleQuiz    LearningModuleType = "quiz"
)

type LearningModule struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Type        LearningModuleType `json:"type"`
}

type LearningPath struct {
	Role         string           `json:"role"`
	Modules      []LearningModule `json:"modules"`
	CareerAdvice string           `json:"careerAdvice"`
}

type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerModel Speaker = "model"
)

type InterviewTurn struct {
	Speaker Speaker `json:"role"`
	Text    string  `json:"text"`
}

type InterviewFeedback struct {
	Score      float64  `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Advice     string   `json:"advice"`
}

type Mentor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
}
