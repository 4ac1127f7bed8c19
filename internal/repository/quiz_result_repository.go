package repository

import (
	"github.com/lshigami/Launchpad/internal/model"
	"gorm.io/gorm"
)

type QuizResultRepository interface {
	Create(result *model.QuizResult) error
	FindByID(id uint) (*model.QuizResult, error)
	FindAll(name string, limit int) ([]model.QuizResult, error)
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Create(result *model.QuizResult) error {
	return r.db.Create(result).Error
}

func (r *quizResultRepository) FindByID(id uint) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.db.First(&result, id).Error
	return &result, err
}

// FindAll lists results newest first, optionally filtered by name.
func (r *quizResultRepository) FindAll(name string, limit int) ([]model.QuizResult, error) {
	var results []model.QuizResult
	query := r.db.Model(&model.QuizResult{})
	if name != "" {
		query = query.Where("name = ?", name)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&results).Error
	return results, err
}
