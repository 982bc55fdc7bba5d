// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger gives handlers one place to record operational failures with
// request context attached, so individual handlers don't repeat the same
// zap field plumbing.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger on top of the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogError records a failed operation without rendering anything.
// Use it when the handler shows the failure inline itself.
func (e *ErrorLogger) LogError(r *http.Request, err error, operation string) {
	e.log.Error("handler operation failed",
		zap.String("operation", operation),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
}

// Handle records a failed operation and renders the error page with a
// user-safe message.
func (e *ErrorLogger) Handle(w http.ResponseWriter, r *http.Request, err error, publicMsg string) {
	e.LogError(r, err, publicMsg)
	RenderError(w, r, "", publicMsg, "")
}
