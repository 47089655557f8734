package service

import (
	"context"
	"io"

	"student-api/internal/adapters/kafka"
	"student-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockSubjectRepo struct{ mock.Mock }

func (m *mockSubjectRepo) ListWithTopics(ctx context.Context) ([]models.Subject, error) {
	args := m.Called(ctx)
	subjects, _ := args.Get(0).([]models.Subject)
	return subjects, args.Error(1)
}

func (m *mockSubjectRepo) List(ctx context.Context) ([]models.Subject, error) {
	args := m.Called(ctx)
	subjects, _ := args.Get(0).([]models.Subject)
	return subjects, args.Error(1)
}

func (m *mockSubjectRepo) FindByID(ctx context.Context, subjectID int) (*models.Subject, error) {
	args := m.Called(ctx, subjectID)
	subject, _ := args.Get(0).(*models.Subject)
	return subject, args.Error(1)
}

func (m *mockSubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	return m.Called(ctx, subject).Error(0)
}

func (m *mockSubjectRepo) CreateTopic(ctx context.Context, subjectID int, topic *models.Topic) error {
	return m.Called(ctx, subjectID, topic).Error(0)
}

type mockStudentRepo struct{ mock.Mock }

func (m *mockStudentRepo) ListWithSubjectIDs(ctx context.Context) ([]models.StudentSummary, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]models.StudentSummary)
	return students, args.Error(1)
}

func (m *mockStudentRepo) FindWithCompletedTopics(ctx context.Context, studentID int) (*models.Student, error) {
	args := m.Called(ctx, studentID)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *mockStudentRepo) Exists(ctx context.Context, studentID int) (bool, error) {
	args := m.Called(ctx, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student, subjectIDs []int) error {
	return m.Called(ctx, student, subjectIDs).Error(0)
}

type mockCompletedRepo struct{ mock.Mock }

func (m *mockCompletedRepo) Upsert(ctx context.Context, studentID, topicID int, isComplete bool) error {
	return m.Called(ctx, studentID, topicID, isComplete).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) StudentCreated(ctx context.Context, e kafka.StudentCreated) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockPublisher) TopicStatusUpdated(ctx context.Context, e kafka.TopicStatusUpdated) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) UploadImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, filename, contentType, body, size)
	return args.String(0), args.Error(1)
}
