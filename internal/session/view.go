package session

import (
	"errors"
	"fmt"
	"strings"
)

type View string

const (
	ViewLanding      View = "LANDING"
	ViewQuiz         View = "QUIZ"
	ViewDashboard    View = "DASHBOARD"
	ViewLearningPath View = "LEARNING_PATH"
	ViewInterview    View = "INTERVIEW"
	ViewMentorMatch  View = "MENTOR_MATCH"
)

// Views lists every screen in navigation order.
var Views = []View{ViewLanding, ViewQuiz, ViewDashboard, ViewLearningPath, ViewInterview, ViewMentorMatch}

var ErrInvalidView = errors.New("invalid view")

func ParseView(s string) (View, error) {
	v := View(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
}

// ShowsNav reports whether the sidebar is visible on v.
func (v View) ShowsNav() bool {
	return v != ViewLanding && v != ViewQuiz
}

// Router is the single current-view pointer. Transitions are always
// requested explicitly; there are no timers or automatic moves.
type Router struct {
	current View
}

func NewRouter() Router {
	return Router{current: ViewLanding}
}

func (r *Router) Current() View {
	return r.current
}

// Navigate moves to `to` and returns the view that was left.
func (r *Router) Navigate(to View) (View, error) {
	if _, err := ParseView(string(to)); err != nil {
		return r.current, err
	}
	from := r.current
	r.current = to
	return from, nil
}

func (r *Router) Reset() {
	r.current = ViewLanding
}
