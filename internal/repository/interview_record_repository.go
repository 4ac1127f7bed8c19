package repository

import (
	"github.com/lshigami/Launchpad/internal/model"
	"gorm.io/gorm"
)

type InterviewRecordRepository interface {
	Create(record *model.InterviewRecord) error
	Update(record *model.InterviewRecord) error
	FindByID(id uint) (*model.InterviewRecord, error)
	FindAll(name string, limit int) ([]model.InterviewRecord, error)
}

type interviewRecordRepository struct {
	db *gorm.DB
}

func NewInterviewRecordRepository(db *gorm.DB) InterviewRecordRepository {
	return &interviewRecordRepository{db: db}
}

func (r *interviewRecordRepository) Create(record *model.InterviewRecord) error {
	return r.db.Create(record).Error
}

func (r *interviewRecordRepository) Update(record *model.InterviewRecord) error {
	return r.db.Save(record).Error
}

func (r *interviewRecordRepository) FindByID(id uint) (*model.InterviewRecord, error) {
	var record model.InterviewRecord
	err := r.db.First(&record, id).Error
	return &record, err
}

// FindAll omits transcripts; use FindByID for the full record.
func (r *interviewRecordRepository) FindAll(name string, limit int) ([]model.InterviewRecord, error) {
	var records []model.InterviewRecord
	query := r.db.Model(&model.InterviewRecord{}).Omit("transcript")
	if name != "" {
		query = query.Where("name = ?", name)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&records).Error
	return records, err
}
