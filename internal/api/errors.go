package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Error is an HTTP error rendered as {"error": Message, "status": "error"}.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	errNoData      = &Error{Code: http.StatusBadRequest, Message: "No data provided"}
	errEmptyText   = &Error{Code: http.StatusBadRequest, Message: "Text input is empty"}
	errTextType    = &Error{Code: http.StatusBadRequest, Message: "Text must be a string"}
	errTooLarge    = &Error{Code: http.StatusRequestEntityTooLarge, Message: "Request body too large"}
	errRateLimited = &Error{Code: http.StatusTooManyRequests, Message: "Rate limit exceeded"}
	errNotFound    = &Error{Code: http.StatusNotFound, Message: "Not found"}
	errNotAllowed  = &Error{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"}
)

type errorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// abortWithError writes err through the error envelope and stops the
// handler chain. Errors that are not *Error become 500 with their text.
func abortWithError(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = &Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.Code, errorResponse{Error: apiErr.Message, Status: statusError})
}
