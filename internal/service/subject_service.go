package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"student-api/internal/adapters/storage"
	"student-api/internal/apperror"
	"student-api/internal/models"
	"student-api/internal/repository"

	"go.uber.org/zap"
)

var ErrImageStoreDisabled = errors.New("image storage is not configured")

type SubjectService interface {
	ListLectures(ctx context.Context) ([]models.LectureResponse, error)
	ListSubjects(ctx context.Context) ([]models.SubjectResponse, error)
	CreateSubject(ctx context.Context, req *models.CreateSubjectRequest) (*models.SubjectResponse, error)
	CreateTopic(ctx context.Context, subjectID int, req *models.CreateTopicRequest) (*models.TopicResponse, error)
	UploadImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*models.ImageUploadResponse, error)
}

type subjectService struct {
	repo   repository.SubjectRepository
	images storage.ImageStore
	log    *zap.Logger
}

// NewSubjectService builds the subject service. images may be nil when uploads are disabled.
func NewSubjectService(repo repository.SubjectRepository, images storage.ImageStore, log *zap.Logger) SubjectService {
	return &subjectService{repo: repo, images: images, log: log.Named("subjects")}
}

func (s *subjectService) ListLectures(ctx context.Context) ([]models.LectureResponse, error) {
	subjects, err := s.repo.ListWithTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}

	lectures := make([]models.LectureResponse, 0, len(subjects))
	for i := range subjects {
		lectures = append(lectures, models.NewLectureResponse(&subjects[i]))
	}
	s.log.Info("Fetched lectures", zap.Int("count", len(lectures)))
	return lectures, nil
}

func (s *subjectService) ListSubjects(ctx context.Context) ([]models.SubjectResponse, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	resp := make([]models.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		resp = append(resp, models.NewSubjectResponse(&subjects[i]))
	}
	return resp, nil
}

func (s *subjectService) CreateSubject(ctx context.Context, req *models.CreateSubjectRequest) (*models.SubjectResponse, error) {
	subject := models.Subject{Title: req.Title, ImageURL: req.ImageURL, Duration: req.Duration}
	if err := s.repo.Create(ctx, &subject); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.log.Info("Subject created", zap.Int("subject_id", subject.SubjectID), zap.String("title", subject.Title))
	resp := models.NewSubjectResponse(&subject)
	return &resp, nil
}

func (s *subjectService) CreateTopic(ctx context.Context, subjectID int, req *models.CreateTopicRequest) (*models.TopicResponse, error) {
	topic := models.Topic{Title: req.Title}
	if err := s.repo.CreateTopic(ctx, subjectID, &topic); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.Info("Topic created", zap.Int("subject_id", subjectID), zap.Int("topic_id", topic.TopicID))
	resp := models.NewTopicResponse(&topic)
	return &resp, nil
}

func (s *subjectService) UploadImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*models.ImageUploadResponse, error) {
	if s.images == nil {
		return nil, ErrImageStoreDisabled
	}
	if !storage.IsImage(contentType) {
		return nil, apperror.Validation("Unsupported content type %q; only images are accepted.", contentType)
	}

	url, err := s.images.UploadImage(ctx, filename, contentType, body, size)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	return &models.ImageUploadResponse{ImageURL: url}, nil
}
