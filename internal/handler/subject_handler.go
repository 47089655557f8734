package handler

import (
	"errors"
	"fmt"
	"net/http"

	"student-api/internal/models"
	"student-api/internal/service"
	"student-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

type SubjectHandler struct {
	subjectService service.SubjectService
	log            *zap.Logger
	uploads        bool
}

// NewSubjectHandler builds the handler; uploads enables POST /subjects/images.
func NewSubjectHandler(subjectService service.SubjectService, uploads bool, log *zap.Logger) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService, uploads: uploads, log: log.Named("subjects")}
}

// RegisterRoutes maps HTTP methods to handler functions
func (h *SubjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	subjects := r.Group("/subjects")
	{
		subjects.GET("", h.ListSubjects)
		subjects.POST("", h.CreateSubject)
		subjects.POST("/:subjectId/topics", h.CreateTopic)
		if h.uploads {
			subjects.POST("/images", h.UploadImage)
		}
	}
}

// ListSubjects godoc
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {array} models.SubjectResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /subjects [get]
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.ListSubjects(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, response.MsgFetchSubjects)
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body models.CreateSubjectRequest true "Subject data"
// @Success 200 {object} models.SubjectResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /subjects [post]
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req models.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Subject validation failed", zap.Error(err))
		response.BadRequest(c, response.MsgInvalidInput, err.Error())
		return
	}

	subject, err := h.subjectService.CreateSubject(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err, response.MsgCreateSubject, zap.String("title", req.Title))
		return
	}
	c.JSON(http.StatusOK, subject)
}

// CreateTopic godoc
// @Summary Add a topic to a subject
// @Description The path subject id always wins over a subjectId in the body
// @Tags subjects
// @Accept json
// @Produce json
// @Param subjectId path int true "Subject ID"
// @Param request body models.CreateTopicRequest true "Topic data"
// @Success 200 {object} models.TopicResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /subjects/{subjectId}/topics [post]
func (h *SubjectHandler) CreateTopic(c *gin.Context) {
	subjectID, ok := pathID(c, "subjectId")
	if !ok {
		return
	}

	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Topic validation failed", zap.Int("subject_id", subjectID), zap.Error(err))
		response.BadRequest(c, response.MsgInvalidInput, err.Error())
		return
	}

	topic, err := h.subjectService.CreateTopic(c.Request.Context(), subjectID, &req)
	if err != nil {
		fail(c, h.log, err, response.MsgCreateTopic, zap.Int("subject_id", subjectID))
		return
	}
	c.JSON(http.StatusOK, topic)
}

// UploadImage godoc
// @Summary Upload a subject image
// @Description Stores the image in object storage and returns the URL to use as imageUrl
// @Tags subjects
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} models.ImageUploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /subjects/images [post]
func (h *SubjectHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", err.Error())
		return
	}
	if file.Size > maxImageSize {
		response.BadRequest(c, "File too large", fmt.Sprintf("maximum size is %d bytes", maxImageSize))
		return
	}

	src, err := file.Open()
	if err != nil {
		fail(c, h.log, err, response.MsgUploadImage)
		return
	}
	defer src.Close()

	resp, err := h.subjectService.UploadImage(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		if errors.Is(err, service.ErrImageStoreDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
			return
		}
		fail(c, h.log, err, response.MsgUploadImage, zap.String("filename", file.Filename))
		return
	}
	c.JSON(http.StatusOK, resp)
}
