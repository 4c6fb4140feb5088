package httperr

import (
	"net/http"
	"strconv"
	"time"

	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail           any `json:"detail,omitempty"`
	AlternativeSlots any `json:"alternativeSlots,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, err, newResponse(status, msg, detail))
}

// AbortWithConflict answers 409 and re-offers the given slots.
func AbortWithConflict(c *gin.Context, err error, alternatives any) {
	resp := newResponse(http.StatusConflict, "Slot is no longer available", nil)
	resp.AlternativeSlots = alternatives
	abort(c, err, resp)
}

// Abort maps err onto the error taxonomy.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(int(RetryAfter/time.Second)))
	}
	var detail any
	if status == http.StatusBadRequest {
		detail = err.Error()
	}
	abort(c, err, newResponse(status, msg, detail))
}

// RetryAfter is advertised on retryable reservation timeouts.
const RetryAfter = 1 * time.Second

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrUsernameTaken):
		return http.StatusConflict, "Username already taken"
	case errs.Is(err, errs.ErrSlugTaken):
		return http.StatusConflict, "Slug already taken"
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, "Slot is no longer available"
	case errs.Is(err, errs.ErrEventTypeInactive):
		return http.StatusGone, "Event type is not active"
	case errs.Is(err, errs.ErrInvalidSlot):
		return http.StatusUnprocessableEntity, "Slot is not offered"
	case errs.Is(err, errs.ErrReservationTimeout):
		return http.StatusServiceUnavailable, "Reservation timed out, retry"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		err = errs.New(resp.Error.Message)
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
