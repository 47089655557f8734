package handler

import (
	"context"
	"io"

	"student-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockSubjectService struct{ mock.Mock }

func (m *mockSubjectService) ListLectures(ctx context.Context) ([]models.LectureResponse, error) {
	args := m.Called(ctx)
	lectures, _ := args.Get(0).([]models.LectureResponse)
	return lectures, args.Error(1)
}

func (m *mockSubjectService) ListSubjects(ctx context.Context) ([]models.SubjectResponse, error) {
	args := m.Called(ctx)
	subjects, _ := args.Get(0).([]models.SubjectResponse)
	return subjects, args.Error(1)
}

func (m *mockSubjectService) CreateSubject(ctx context.Context, req *models.CreateSubjectRequest) (*models.SubjectResponse, error) {
	args := m.Called(ctx, req)
	subject, _ := args.Get(0).(*models.SubjectResponse)
	return subject, args.Error(1)
}

func (m *mockSubjectService) CreateTopic(ctx context.Context, subjectID int, req *models.CreateTopicRequest) (*models.TopicResponse, error) {
	args := m.Called(ctx, subjectID, req)
	topic, _ := args.Get(0).(*models.TopicResponse)
	return topic, args.Error(1)
}

func (m *mockSubjectService) UploadImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*models.ImageUploadResponse, error) {
	args := m.Called(ctx, filename, contentType, body, size)
	resp, _ := args.Get(0).(*models.ImageUploadResponse)
	return resp, args.Error(1)
}

type mockStudentService struct{ mock.Mock }

func (m *mockStudentService) ListStudents(ctx context.Context) ([]models.StudentSummary, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]models.StudentSummary)
	return students, args.Error(1)
}

func (m *mockStudentService) GetProgress(ctx context.Context, studentID int) (*models.StudentProgressResponse, error) {
	args := m.Called(ctx, studentID)
	progress, _ := args.Get(0).(*models.StudentProgressResponse)
	return progress, args.Error(1)
}

func (m *mockStudentService) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *mockStudentService) UpdateTopicStatus(ctx context.Context, studentID int, req *models.UpdateTopicStatusRequest) error {
	return m.Called(ctx, studentID, req).Error(0)
}
