package service

import (
	"testing"

	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Lifecycle(t *testing.T) {
	svc := NewSessionService(session.NewStore())

	created, err := svc.CreateSession(dto.CreateSessionRequest{Name: "Ada", TargetRole: "Data Scientist"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "QUIZ", created.View)
	assert.False(t, created.ShowsNav)
	assert.False(t, created.QuizCompleted)
	assert.Nil(t, created.Score)

	nav, err := svc.Navigate(created.ID, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "DASHBOARD", nav.View)
	assert.True(t, nav.ShowsNav)

	_, err = svc.Navigate(created.ID, "SETTINGS")
	assert.ErrorIs(t, err, ErrInvalidView)

	got, err := svc.GetSession(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "DASHBOARD", got.View)

	restarted, err := svc.Restart(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, restarted.ID)
	assert.Equal(t, "LANDING", restarted.View)
	assert.Empty(t, restarted.Name)

	_, err = svc.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Roles(t *testing.T) {
	svc := NewSessionService(session.NewStore())
	roles := svc.Roles()
	assert.Len(t, roles, 6)
	assert.Contains(t, roles, "Financial Analyst")

	roles[0] = "changed"
	assert.Equal(t, "Software Engineer", svc.Roles()[0])
}
