package httperr

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"smart-parking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Success: false, Message: msg, Detail: detail}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort picks the status from the error's category mark.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

// Classify maps an error onto an HTTP status and a client-safe message.
// Uncategorized errors become 500 without leaking their text.
func Classify(err error) (int, string) {
	var status int
	switch {
	case errs.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		status = http.StatusBadRequest
	default:
		return http.StatusInternalServerError, internalMessage
	}
	return status, publicMessage(err)
}

func publicMessage(err error) string {
	msg := strings.TrimSpace(errs.Cause(err).Error())
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
