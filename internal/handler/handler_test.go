package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"student-api/internal/apperror"
	"student-api/internal/models"
	"student-api/internal/service"
	"student-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type registrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

func newRouter(handlers ...registrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLectureHandler_ListLectures(t *testing.T) {
	svc := new(mockSubjectService)
	svc.On("ListLectures", mock.Anything).Return([]models.LectureResponse{
		{SubjectID: 1, Title: "Math", Topics: []models.LectureTopic{}},
	}, nil).Once()
	svc.On("ListLectures", mock.Anything).Return(nil, errors.New("db gone")).Once()
	r := newRouter(NewLectureHandler(svc, zap.NewNop()))

	w := do(r, http.MethodGet, "/api/lectures", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"subjectId":1,"title":"Math","imageUrl":"","duration":"","topics":[]}]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/lectures", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.MsgFetchLectures, decode(t, w)["error"])
}

func TestStudentHandler_CreateStudent(t *testing.T) {
	const valid = `{"firstName":"Ada","secondName":"Lovelace","title":"Ms","email":"ada@example.com","dob":"1815-12-10","subjectIds":[3,4]}`

	t.Run("success has empty body", func(t *testing.T) {
		svc := new(mockStudentService)
		svc.On("CreateStudent", mock.Anything, mock.MatchedBy(func(req *models.CreateStudentRequest) bool {
			return req.Email == "ada@example.com" && len(req.SubjectIDs) == 2
		})).Return(7, nil)
		w := do(newRouter(NewStudentHandler(svc, zap.NewNop())), http.MethodPost, "/api/studentinfo", valid)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("invalid model", func(t *testing.T) {
		svc := new(mockStudentService)
		w := do(newRouter(NewStudentHandler(svc, zap.NewNop())), http.MethodPost, "/api/studentinfo", `{"firstName":"Ada","email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, response.MsgInvalidInput, body["error"])
		assert.NotEmpty(t, body["details"])
		svc.AssertNotCalled(t, "CreateStudent", mock.Anything, mock.Anything)
	})

	t.Run("unknown subjects", func(t *testing.T) {
		svc := new(mockStudentService)
		svc.On("CreateStudent", mock.Anything, mock.Anything).Return(0, apperror.Validation("Subjects with Ids 3,4 do not exist."))
		w := do(newRouter(NewStudentHandler(svc, zap.NewNop())), http.MethodPost, "/api/studentinfo", valid)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Subjects with Ids 3,4 do not exist.", decode(t, w)["error"])
	})

	t.Run("constraint violation", func(t *testing.T) {
		svc := new(mockStudentService)
		svc.On("CreateStudent", mock.Anything, mock.Anything).
			Return(0, apperror.Constraint(errors.New("dup"), "Error Number: 23505, Message: duplicate key value"))
		w := do(newRouter(NewStudentHandler(svc, zap.NewNop())), http.MethodPost, "/api/studentinfo", valid)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while updating the database.","details":["Error Number: 23505, Message: duplicate key value"]}`, w.Body.String())
	})
}

func TestStudentHandler_GetStudent(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("GetProgress", mock.Anything, 2).Return(&models.StudentProgressResponse{
		StudentID: 2,
		Topics:    []models.TopicStatus{{TopicID: 5, IsComplete: true}},
	}, nil)
	svc.On("GetProgress", mock.Anything, 3).Return(nil, apperror.NotFound("Student with Id 3 not found."))
	r := newRouter(NewStudentHandler(svc, zap.NewNop()))

	w := do(r, http.MethodGet, "/api/studentinfo/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"studentId":2,"topics":[{"topicId":5,"isComplete":true}]}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/studentinfo/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	for _, id := range []string{"abc", "0", "-1"} {
		w = do(r, http.MethodGet, "/api/studentinfo/"+id, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestStudentHandler_ListStudents(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("ListStudents", mock.Anything).Return([]models.StudentSummary{
		{StudentID: 1, FirstName: "Ada", SecondName: "L", Title: "Ms", Email: "a@x.io", SubjectIDs: []int{2}},
	}, nil)

	w := do(newRouter(NewStudentHandler(svc, zap.NewNop())), http.MethodGet, "/api/studentinfo", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"studentId":1,"firstName":"Ada","secondName":"L","title":"Ms","email":"a@x.io","subjectIds":[2]}]`, w.Body.String())
}

func TestStudentHandler_UpdateTopicStatus(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("UpdateTopicStatus", mock.Anything, 1, &models.UpdateTopicStatusRequest{TopicID: 5, IsComplete: true}).Return(nil)
	svc.On("UpdateTopicStatus", mock.Anything, 1, &models.UpdateTopicStatusRequest{TopicID: 0}).
		Return(apperror.Validation("TopicId must be a positive integer."))
	svc.On("UpdateTopicStatus", mock.Anything, 9, mock.Anything).Return(apperror.NotFound("Student with Id 9 not found."))
	r := newRouter(NewStudentHandler(svc, zap.NewNop()))

	w := do(r, http.MethodPost, "/api/studentinfo/1/update-topic", `{"topicId":5,"isComplete":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodPost, "/api/studentinfo/1/update-topic", `{"topicId":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/studentinfo/9/update-topic", `{"topicId":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/studentinfo/1/update-topic", `{"topicId":"five"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubjectHandler_CreateSubject(t *testing.T) {
	svc := new(mockSubjectService)
	svc.On("CreateSubject", mock.Anything, &models.CreateSubjectRequest{Title: "Math", ImageURL: "m.png", Duration: "4h"}).
		Return(&models.SubjectResponse{SubjectID: 1, Title: "Math", ImageURL: "m.png", Duration: "4h"}, nil)
	r := newRouter(NewSubjectHandler(svc, false, zap.NewNop()))

	w := do(r, http.MethodPost, "/api/subjects", `{"title":"Math","imageUrl":"m.png","duration":"4h"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subjectId":1,"title":"Math","imageUrl":"m.png","duration":"4h"}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/subjects", `{"imageUrl":"m.png"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubjectHandler_CreateTopic(t *testing.T) {
	svc := new(mockSubjectService)
	svc.On("CreateTopic", mock.Anything, 2, mock.Anything).Return(&models.TopicResponse{TopicID: 6, Title: "Sets", SubjectID: 2}, nil)
	svc.On("CreateTopic", mock.Anything, 3, mock.Anything).Return(nil, apperror.NotFound("Subject with Id 3 not found."))
	r := newRouter(NewSubjectHandler(svc, false, zap.NewNop()))

	w := do(r, http.MethodPost, "/api/subjects/2/topics", `{"title":"Sets","subjectId":99}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"topicId":6,"title":"Sets","subjectId":2}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/subjects/3/topics", `{"title":"Sets"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/subjects/x/topics", `{"title":"Sets"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubjectHandler_ListSubjects(t *testing.T) {
	svc := new(mockSubjectService)
	svc.On("ListSubjects", mock.Anything).Return([]models.SubjectResponse{}, nil)

	w := do(newRouter(NewSubjectHandler(svc, false, zap.NewNop())), http.MethodGet, "/api/subjects", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func multipartImage(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="math.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestSubjectHandler_UploadImage(t *testing.T) {
	svc := new(mockSubjectService)
	svc.On("UploadImage", mock.Anything, "math.png", "image/png", mock.Anything, int64(9)).
		Return(&models.ImageUploadResponse{ImageURL: "http://cdn/subjects/images/a.png"}, nil)
	r := newRouter(NewSubjectHandler(svc, true, zap.NewNop()))

	body, ct := multipartImage(t, "image/png")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/subjects/images", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"imageUrl":"http://cdn/subjects/images/a.png"}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/subjects/images", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubjectHandler_UploadImageDisabled(t *testing.T) {
	svc := new(mockSubjectService)
	svc.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrImageStoreDisabled)
	r := newRouter(NewSubjectHandler(svc, true, zap.NewNop()))

	body, ct := multipartImage(t, "image/png")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/subjects/images", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubjectHandler_NoUploadRouteWhenDisabled(t *testing.T) {
	r := newRouter(NewSubjectHandler(new(mockSubjectService), false, zap.NewNop()))

	w := do(r, http.MethodPost, "/api/subjects/images", `{}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
