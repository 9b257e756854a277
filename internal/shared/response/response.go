package response

import (
	"employee-management/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type ApiError struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Status    int      `json:"status"`
	SubErrors []string `json:"subErrors"`
}

// ApiEnvelope wraps every response body. Exactly one of Data and Error is set.
type ApiEnvelope struct {
	Ok    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Error *ApiError `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, subErrors []string) {
	if subErrors == nil {
		subErrors = []string{}
	}
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: &ApiError{
			Code:      errorCode,
			Message:   message,
			Status:    status,
			SubErrors: subErrors,
		},
	})
}

// Fail renders err through the shared translator.
func Fail(c *gin.Context, err error) apperror.HTTPError {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.SubErrors)
	return httpErr
}

// AbortWithError renders err and stops the handler chain.
func AbortWithError(c *gin.Context, err error) apperror.HTTPError {
	httpErr := Fail(c, err)
	c.Abort()
	return httpErr
}
