package repository

import (
	"context"
	"errors"

	"student-api/internal/apperror"
	"student-api/internal/database"
	"student-api/internal/models"

	"gorm.io/gorm"
)

type SubjectRepository interface {
	ListWithTopics(ctx context.Context) ([]models.Subject, error)
	List(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, subjectID int) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	CreateTopic(ctx context.Context, subjectID int, topic *models.Topic) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) ListWithTopics(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("topicid ASC")
		}).
		Order("subjectid ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return subjects, nil
}

func (r *subjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.db.WithContext(ctx).Order("subjectid ASC").Find(&subjects).Error; err != nil {
		return nil, database.Classify(err)
	}
	return subjects, nil
}

func (r *subjectRepository) FindByID(ctx context.Context, subjectID int) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.WithContext(ctx).Where("subjectid = ?", subjectID).First(&subject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Subject with Id %d not found.", subjectID)
		}
		return nil, database.Classify(err)
	}
	return &subject, nil
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return database.Classify(r.db.WithContext(ctx).Create(subject).Error)
}

// CreateTopic stores topic under subjectID, overriding whatever subject the caller set.
func (r *subjectRepository) CreateTopic(ctx context.Context, subjectID int, topic *models.Topic) error {
	if _, err := r.FindByID(ctx, subjectID); err != nil {
		return err
	}

	topic.TopicID = 0
	topic.SubjectID = subjectID
	return database.Classify(r.db.WithContext(ctx).Create(topic).Error)
}
