// Package httperr renders the API error envelope:
//
//	{"ok": false, "error": {"code", "message", "timestamp", "details"?}}
package httperr

import (
	"log/slog"
	"time"

	"nexus-booking/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

type Envelope struct {
	OK    bool      `json:"ok"`
	Error ErrorBody `json:"error"`
}

func NewEnvelope(kind apperr.Kind, details map[string]any) (int, Envelope) {
	status, message := apperr.Entry(kind)
	return status, Envelope{
		OK: false,
		Error: ErrorBody{
			Code:      string(kind),
			Message:   message,
			Timestamp: time.Now().UTC(),
			Details:   details,
		},
	}
}

// Abort resolves err against the taxonomy and writes the envelope. Untagged
// errors become INTERNAL_ERROR: the cause is logged with the request id and
// never leaks to the caller.
func Abort(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	details := apperr.DetailsOf(err)

	if kind == apperr.KindInternal {
		slog.Error("request failed",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
		details = nil
	}

	status, envelope := NewEnvelope(kind, details)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, envelope)
}
