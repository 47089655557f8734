package repository

import (
	"context"

	"student-api/internal/apperror"
	"student-api/internal/database"
	"student-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletedTopicRepository interface {
	Upsert(ctx context.Context, studentID, topicID int, isComplete bool) error
}

type completedTopicRepository struct {
	db *gorm.DB
}

func NewCompletedTopicRepository(db *gorm.DB) CompletedTopicRepository {
	return &completedTopicRepository{db: db}
}

// Upsert sets the completion flag for (studentID, topicID), creating the row on first use.
// A missing student is NotFound, a missing topic is a Validation error.
func (r *completedTopicRepository) Upsert(ctx context.Context, studentID, topicID int, isComplete bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Student{}).Where("studentid = ?", studentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("Student with Id %d not found.", studentID)
		}

		if err := tx.Model(&models.Topic{}).Where("topicid = ?", topicID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.Validation("Topic with Id %d does not exist.", topicID)
		}

		record := models.CompletedTopic{StudentID: studentID, TopicID: topicID, IsComplete: isComplete}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "studentid"}, {Name: "topicid"}},
			DoUpdates: clause.AssignmentColumns([]string{"iscomplete"}),
		}).Create(&record).Error
	})
	return database.Classify(err)
}
