package httperr

import (
	"github.com/gin-gonic/gin"
)

const validationFailedMessage = "Validation failed"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldDetail is the detail body of a validation failure.
type FieldDetail struct {
	Fields map[string]string `json:"fields"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithFieldErrors reports every failing field of a request at once.
func AbortWithFieldErrors(c *gin.Context, status int, err error, fields map[string]string) {
	AbortWithError(c, status, err, validationFailedMessage, FieldDetail{Fields: fields})
}
