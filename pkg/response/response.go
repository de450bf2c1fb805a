package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarwaraminy/hostapi/pkg/apperr"
)

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Fail writes the client-facing message for err with the status its kind
// maps to. Untyped errors are reported as a generic server failure.
func Fail(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	Message(c, apperr.HTTPStatus(e.Kind), e.Message)
}
