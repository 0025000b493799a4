package services

import (
	"context"
	"log/slog"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/middleware"
	"github.com/go-playground/validator/v10"
)

// validate checks request structs with the same tags gin binds with, so
// callers that bypass HTTP (CLI, seed) get identical rules.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}()

// validateRequest runs struct validation and maps failures to ErrValidation.
func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.NewValidationError("%s", err.Error())
	}
	return nil
}

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
