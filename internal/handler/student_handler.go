package handler

import (
	"net/http"

	"student-api/internal/models"
	"student-api/internal/service"
	"student-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudentHandler struct {
	studentService service.StudentService
	log            *zap.Logger
}

func NewStudentHandler(studentService service.StudentService, log *zap.Logger) *StudentHandler {
	return &StudentHandler{studentService: studentService, log: log.Named("studentinfo")}
}

// RegisterRoutes maps HTTP methods to handler functions
func (h *StudentHandler) RegisterRoutes(r *gin.RouterGroup) {
	students := r.Group("/studentinfo")
	{
		students.GET("", h.ListStudents)
		students.POST("", h.CreateStudent)
		students.GET("/:studentId", h.GetStudent)
		students.POST("/:studentId/update-topic", h.UpdateTopicStatus)
	}
}

// ListStudents godoc
// @Summary List students
// @Description Students with the ids of the subjects they are enrolled in
// @Tags studentinfo
// @Produce json
// @Success 200 {array} models.StudentSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /studentinfo [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, response.MsgFetchStudents)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get student progress
// @Description Completion state of every topic the student has a record for
// @Tags studentinfo
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} models.StudentProgressResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /studentinfo/{studentId} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}

	progress, err := h.studentService.GetProgress(c.Request.Context(), studentID)
	if err != nil {
		fail(c, h.log, err, response.MsgFetchStudent, zap.Int("student_id", studentID))
		return
	}
	c.JSON(http.StatusOK, progress)
}

// CreateStudent godoc
// @Summary Create a student
// @Description Creates the student and enrolls it in the given subjects in one transaction
// @Tags studentinfo
// @Accept json
// @Param request body models.CreateStudentRequest true "Student data"
// @Success 200 "Student created"
// @Failure 400 {object} models.ErrorResponse "Invalid input or unknown subject ids"
// @Failure 500 {object} models.ErrorResponse
// @Router /studentinfo [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Student validation failed", zap.Error(err))
		response.BadRequest(c, response.MsgInvalidInput, err.Error())
		return
	}

	if _, err := h.studentService.CreateStudent(c.Request.Context(), &req); err != nil {
		fail(c, h.log, err, response.MsgCreateStudent, zap.String("email", req.Email))
		return
	}
	c.Status(http.StatusOK)
}

// UpdateTopicStatus godoc
// @Summary Set topic completion
// @Description Creates or updates the completion record of one topic for the student
// @Tags studentinfo
// @Accept json
// @Param studentId path int true "Student ID"
// @Param request body models.UpdateTopicStatusRequest true "Topic status"
// @Success 200 "Status saved"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /studentinfo/{studentId}/update-topic [post]
func (h *StudentHandler) UpdateTopicStatus(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}

	var req models.UpdateTopicStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Topic status validation failed", zap.Int("student_id", studentID), zap.Error(err))
		response.BadRequest(c, response.MsgInvalidInput, err.Error())
		return
	}

	if err := h.studentService.UpdateTopicStatus(c.Request.Context(), studentID, &req); err != nil {
		fail(c, h.log, err, response.MsgUpdateTopic,
			zap.Int("student_id", studentID),
			zap.Int("topic_id", req.TopicID),
		)
		return
	}
	c.Status(http.StatusOK)
}
