package service

import (
	"testing"

	"github.com/lshigami/Launchpad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreQuiz(t *testing.T) {
	qs := sampleQuiz() // correct answers 0,1,2,3,0

	tests := []struct {
		name    string
		answers []*int
		want    int
		correct []bool
	}{
		{"all correct", []*int{intPtr(0), intPtr(1), intPtr(2), intPtr(3), intPtr(0)}, 5, []bool{true, true, true, true, true}},
		{"none answered", []*int{nil, nil, nil, nil, nil}, 0, []bool{false, false, false, false, false}},
		{"mixed", []*int{intPtr(0), nil, intPtr(1), intPtr(3), intPtr(2)}, 2, []bool{true, false, false, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, correct, err := ScoreQuiz(qs, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, score)
			assert.Equal(t, tt.correct, correct)
		})
	}
}

func TestScoreQuiz_LengthMismatch(t *testing.T) {
	_, _, err := ScoreQuiz(sampleQuiz(), []*int{intPtr(0)})
	assert.ErrorIs(t, err, ErrAnswerCountMismatch)

	score, correct, err := ScoreQuiz([]model.QuizQuestion{}, []*int{})
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Empty(t, correct)
}

func TestReadiness(t *testing.T) {
	assert.Equal(t, 20, Readiness(0))
	assert.Equal(t, 65, Readiness(3))
	assert.Equal(t, 95, Readiness(5))
	assert.Equal(t, 100, Readiness(6))
	assert.Equal(t, 0, Readiness(-2))

	prev := Readiness(-10)
	for s := -9; s <= 20; s++ {
		r := Readiness(s)
		assert.GreaterOrEqual(t, r, prev)
		assert.GreaterOrEqual(t, r, 0)
		assert.LessOrEqual(t, r, 100)
		prev = r
	}
}

func TestTier(t *testing.T) {
	assert.Equal(t, TierSilver, Tier(80))
	assert.Equal(t, TierGold, Tier(81))
	assert.Equal(t, TierBronze, Tier(50))
	assert.Equal(t, TierSilver, Tier(51))
	assert.Equal(t, TierSilver, Tier(Readiness(3)))
}

func TestSkillProfileAndGrowth(t *testing.T) {
	sc := NewScoreConverterService()

	skills := sc.SkillProfile(3)
	require.Len(t, skills, 6)
	assert.Equal(t, "Technical", skills[0].Subject)
	assert.Equal(t, 60, skills[0].Score)
	assert.Equal(t, 100, skills[0].FullMark)
	assert.Equal(t, 70, skills[5].Score)

	growth := sc.GrowthProjection(3)
	require.Len(t, growth, 5)
	assert.Equal(t, 30, growth[0].Readiness)
	assert.Equal(t, 45, growth[1].Readiness)
	assert.Equal(t, 75, growth[3].Readiness)
	assert.Equal(t, "Goal", growth[4].Name)
	assert.Equal(t, 92, growth[4].Readiness)
}
