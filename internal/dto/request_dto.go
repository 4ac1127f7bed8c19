package dto

// CreateSessionRequest is the landing form.
type CreateSessionRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	TargetRole string `json:"target_role" binding:"required,max=100"`
}

type NavigateRequest struct {
	View string `json:"view" binding:"required,oneof=LANDING QUIZ DASHBOARD LEARNING_PATH INTERVIEW MENTOR_MATCH"`
}

// SubmitQuizRequest carries one entry per question; null means unanswered.
type SubmitQuizRequest struct {
	Answers []*int `json:"answers" binding:"required"`
}

type InterviewMessageRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

type HistoryQuery struct {
	Name  string `form:"name"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
