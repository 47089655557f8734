package response

import (
	"net/http"

	"student-api/internal/apperror"
	"student-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Messages returned to clients
const (
	MsgInvalidInput      = "Invalid input data"
	MsgInvalidID         = "Id must be a positive integer"
	MsgDatabaseUpdate    = "An error occurred while updating the database."
	MsgFetchLectures     = "An error occurred while retrieving lectures."
	MsgFetchStudents     = "An error occurred while retrieving students."
	MsgFetchStudent      = "An error occurred while retrieving the student."
	MsgCreateStudent     = "An error occurred while creating the student."
	MsgUpdateTopic       = "An error occurred while updating the topic status."
	MsgFetchSubjects     = "An error occurred while retrieving subjects."
	MsgCreateSubject     = "An error occurred while creating the subject."
	MsgCreateTopic       = "An error occurred while creating the topic."
	MsgUploadImage       = "An error occurred while uploading the image."
	MsgRateLimitExceeded = "Rate limit exceeded"
)

// Status is the HTTP status for err by its apperror kind.
func Status(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON error response. Unclassified errors only expose fallback.
func Error(c *gin.Context, err error, fallback string) {
	appErr, ok := apperror.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
		return
	}

	switch appErr.Kind {
	case apperror.KindValidation, apperror.KindNotFound:
		c.JSON(Status(err), models.ErrorResponse{Error: appErr.Message})
	case apperror.KindConstraint:
		details := appErr.Violations
		if details == nil {
			details = []string{}
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: MsgDatabaseUpdate, Details: details})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
	}
}

// BadRequest reports malformed input together with the decoder or validator message.
func BadRequest(c *gin.Context, message string, details string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: message, Details: details})
}
