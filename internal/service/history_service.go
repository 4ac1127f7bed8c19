package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

// HistoryService reads the persisted quiz results and interview records.
type HistoryService interface {
	ListQuizResults(query dto.HistoryQuery) ([]dto.QuizResultSummaryDTO, error)
	ListInterviews(query dto.HistoryQuery) ([]dto.InterviewRecordSummaryDTO, error)
	GetInterview(id uint) (*dto.InterviewRecordDetailDTO, error)
}

type historyService struct {
	quizResultRepo repository.QuizResultRepository
	recordRepo     repository.InterviewRecordRepository
}

func NewHistoryService(quizResultRepo repository.QuizResultRepository, recordRepo repository.InterviewRecordRepository) HistoryService {
	return &historyService{quizResultRepo: quizResultRepo, recordRepo: recordRepo}
}

func historyLimit(q dto.HistoryQuery) int {
	if q.Limit <= 0 {
		return defaultHistoryLimit
	}
	return q.Limit
}

func (s *historyService) ListQuizResults(query dto.HistoryQuery) ([]dto.QuizResultSummaryDTO, error) {
	results, err := s.quizResultRepo.FindAll(query.Name, historyLimit(query))
	if err != nil {
		log.Error().Err(err).Msg("ListQuizResults: query failed")
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}
	out := []dto.QuizResultSummaryDTO{}
	if err := copier.Copy(&out, &results); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *historyService) ListInterviews(query dto.HistoryQuery) ([]dto.InterviewRecordSummaryDTO, error) {
	records, err := s.recordRepo.FindAll(query.Name, historyLimit(query))
	if err != nil {
		log.Error().Err(err).Msg("ListInterviews: query failed")
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	out := []dto.InterviewRecordSummaryDTO{}
	if err := copier.Copy(&out, &records); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *historyService) GetInterview(id uint) (*dto.InterviewRecordDetailDTO, error) {
	record, err := s.recordRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("interview record %d: %w", id, ErrRecordNotFound)
		}
		return nil, err
	}

	var out dto.InterviewRecordDetailDTO
	if err := copier.Copy(&out.InterviewRecordSummaryDTO, record); err != nil {
		return nil, err
	}
	out.Transcript = toTurnDTOs(record.Transcript)
	out.Strengths = append([]string{}, record.Strengths...)
	out.Weaknesses = append([]string{}, record.Weaknesses...)
	out.Advice = record.Advice
	return &out, nil
}
