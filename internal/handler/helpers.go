package handler

import (
	"strconv"

	"student-api/internal/api/middleware"
	"student-api/internal/apperror"
	"student-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pathID reads a positive integer path parameter, answering 400 when it is anything else.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.BadRequest(c, response.MsgInvalidID, name+"="+c.Param(name))
		return 0, false
	}
	return id, true
}

// fail logs err with the request context and writes the matching error response.
func fail(c *gin.Context, log *zap.Logger, err error, fallback string, fields ...zap.Field) {
	fields = append(fields,
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindNotFound:
		log.Warn("Request rejected", fields...)
	default:
		log.Error("Request failed", fields...)
	}
	response.Error(c, err, fallback)
}
