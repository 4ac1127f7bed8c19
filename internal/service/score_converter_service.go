package service

import (
	"fmt"

	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/model"
)

const (
	TierGold   = "Gold"
	TierSilver = "Silver"
	TierBronze = "Bronze"

	// Display-only constants for the dashboard charts.
	skillFullMark   = 100
	growthGoal      = 92
	optionsPerQuiz  = 4
	readinessBase   = 20
	readinessPerHit = 15
)

// ScoreQuiz counts the positions where the selected option equals the
// correct one. Unanswered (nil) entries never match. The answer slice must
// be exactly as long as the question slice.
func ScoreQuiz(questions []model.QuizQuestion, answers []*int) (int, []bool, error) {
	if len(answers) != len(questions) {
		return 0, nil, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCountMismatch, len(answers), len(questions))
	}
	score := 0
	correct := make([]bool, len(questions))
	for i, q := range questions {
		if answers[i] != nil && *answers[i] == q.CorrectAnswer {
			correct[i] = true
			score++
		}
	}
	return score, correct, nil
}

// Readiness maps a quiz score to a 0..100 percentage.
func Readiness(score int) int {
	r := score*readinessPerHit + readinessBase
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func Tier(readiness int) string {
	switch {
	case readiness > 80:
		return TierGold
	case readiness > 50:
		return TierSilver
	default:
		return TierBronze
	}
}

type ScoreConverterService interface {
	Readiness(score int) int
	Tier(readiness int) string
	SkillProfile(score int) []dto.SkillScoreDTO
	GrowthProjection(score int) []dto.GrowthPointDTO
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) Readiness(score int) int {
	return Readiness(score)
}

func (s *scoreConverterServiceImpl) Tier(readiness int) string {
	return Tier(readiness)
}

// SkillProfile only derives the technical axis from the score; the others
// are fixed placeholders until the quiz covers them.
func (s *scoreConverterServiceImpl) SkillProfile(score int) []dto.SkillScoreDTO {
	return []dto.SkillScoreDTO{
		{Subject: "Technical", Score: score * 20, FullMark: skillFullMark},
		{Subject: "Soft Skills", Score: 45, FullMark: skillFullMark},
		{Subject: "Logic", Score: 65, FullMark: skillFullMark},
		{Subject: "Industry", Score: 30, FullMark: skillFullMark},
		{Subject: "Domain", Score: 55, FullMark: skillFullMark},
		{Subject: "Aptitude", Score: 70, FullMark: skillFullMark},
	}
}

func (s *scoreConverterServiceImpl) GrowthProjection(score int) []dto.GrowthPointDTO {
	start := score * 10
	return []dto.GrowthPointDTO{
		{Name: "D1", Readiness: start},
		{Name: "W1", Readiness: start + 15},
		{Name: "W2", Readiness: start + 30},
		{Name: "W3", Readiness: start + 45},
		{Name: "Goal", Readiness: growthGoal},
	}
}
