package handler

import (
	"net/http"

	"student-api/internal/service"
	"student-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LectureHandler struct {
	subjectService service.SubjectService
	log            *zap.Logger
}

func NewLectureHandler(subjectService service.SubjectService, log *zap.Logger) *LectureHandler {
	return &LectureHandler{subjectService: subjectService, log: log.Named("lectures")}
}

// RegisterRoutes maps HTTP methods to handler functions
func (h *LectureHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/lectures", h.ListLectures)
}

// ListLectures godoc
// @Summary List lectures
// @Description Every subject with its topics, ordered by id
// @Tags lectures
// @Produce json
// @Success 200 {array} models.LectureResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /lectures [get]
func (h *LectureHandler) ListLectures(c *gin.Context) {
	lectures, err := h.subjectService.ListLectures(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, response.MsgFetchLectures)
		return
	}
	c.JSON(http.StatusOK, lectures)
}
