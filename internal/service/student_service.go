package service

import (
	"context"
	"fmt"
	"time"

	"student-api/internal/adapters/kafka"
	"student-api/internal/apperror"
	"student-api/internal/models"
	"student-api/internal/repository"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type StudentService interface {
	ListStudents(ctx context.Context) ([]models.StudentSummary, error)
	GetProgress(ctx context.Context, studentID int) (*models.StudentProgressResponse, error)
	CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (int, error)
	UpdateTopicStatus(ctx context.Context, studentID int, req *models.UpdateTopicStatusRequest) error
}

type studentService struct {
	students  repository.StudentRepository
	completed repository.CompletedTopicRepository
	events    kafka.Publisher
	log       *zap.Logger
}

func NewStudentService(
	students repository.StudentRepository,
	completed repository.CompletedTopicRepository,
	events kafka.Publisher,
	log *zap.Logger,
) StudentService {
	if events == nil {
		events = kafka.NopPublisher{}
	}
	return &studentService{
		students:  students,
		completed: completed,
		events:    events,
		log:       log.Named("students"),
	}
}

func (s *studentService) ListStudents(ctx context.Context) ([]models.StudentSummary, error) {
	students, err := s.students.ListWithSubjectIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	s.log.Info("Fetched students", zap.Int("count", len(students)))
	return students, nil
}

func (s *studentService) GetProgress(ctx context.Context, studentID int) (*models.StudentProgressResponse, error) {
	student, err := s.students.FindWithCompletedTopics(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student %d: %w", studentID, err)
	}

	resp := models.NewStudentProgressResponse(student)
	return &resp, nil
}

func (s *studentService) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (int, error) {
	dob, err := ParseDob(req.Dob)
	if err != nil {
		return 0, err
	}

	student := models.Student{
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		Title:      req.Title,
		Email:      req.Email,
		Dob:        dob,
	}
	if err := s.students.Create(ctx, &student, req.SubjectIDs); err != nil {
		return 0, fmt.Errorf("create student: %w", err)
	}

	s.log.Info("Student created",
		zap.Int("student_id", student.StudentID),
		zap.Ints("subject_ids", req.SubjectIDs),
	)

	subjectIDs := req.SubjectIDs
	if subjectIDs == nil {
		subjectIDs = []int{}
	}
	if err := s.events.StudentCreated(ctx, kafka.StudentCreated{StudentID: student.StudentID, SubjectIDs: subjectIDs}); err != nil {
		s.log.Warn("Failed to publish student event", zap.Int("student_id", student.StudentID), zap.Error(err))
	}
	return student.StudentID, nil
}

func (s *studentService) UpdateTopicStatus(ctx context.Context, studentID int, req *models.UpdateTopicStatusRequest) error {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return fmt.Errorf("check student %d: %w", studentID, err)
	}
	if !exists {
		return apperror.NotFound("Student with Id %d not found.", studentID)
	}
	if req.TopicID <= 0 {
		return apperror.Validation("TopicId must be a positive integer.")
	}

	if err := s.completed.Upsert(ctx, studentID, req.TopicID, req.IsComplete); err != nil {
		return fmt.Errorf("update topic %d for student %d: %w", req.TopicID, studentID, err)
	}

	s.log.Info("Topic status updated",
		zap.Int("student_id", studentID),
		zap.Int("topic_id", req.TopicID),
		zap.Bool("is_complete", req.IsComplete),
	)

	event := kafka.TopicStatusUpdated{StudentID: studentID, TopicID: req.TopicID, IsComplete: req.IsComplete}
	if err := s.events.TopicStatusUpdated(ctx, event); err != nil {
		s.log.Warn("Failed to publish topic event", zap.Int("student_id", studentID), zap.Error(err))
	}
	return nil
}

// ParseDob accepts a calendar date (2006-01-02) or an RFC3339 timestamp, keeping the date part.
func ParseDob(value string) (datatypes.Date, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
		}
	}
	return datatypes.Date{}, apperror.Validation("Invalid dob %q; expected YYYY-MM-DD.", value)
}
