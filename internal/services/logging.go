package services

import (
	"context"
	"log/slog"
	"time"
)

// ServiceLogger emits one structured record per service operation, with
// the status and error detail flattened into attributes so operations
// can be filtered and timed from the logs alone.
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, component string) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("component", component),
	}
}

// LogOperation records the outcome of one operation. Expected failures
// (validation, ownership, missing rows, throttling) log as warnings or
// info; everything else is an error.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation string, userID string, resourceID uint, resourceType string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		level = slog.LevelError
		status = "error"

		switch {
		case IsValidation(err):
			level = slog.LevelWarn
			status = "validation_error"
		case IsBusinessRule(err):
			level = slog.LevelWarn
			status = "business_rule_violation"
		case IsUnauthorized(err):
			level = slog.LevelWarn
			status = "unauthorized"
		case IsRateLimit(err):
			level = slog.LevelWarn
			status = "rate_limited"
		case IsRemoteService(err):
			status = "remote_failure"
		case IsNotFound(err):
			level = slog.LevelInfo
			status = "not_found"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.Uint64("resource_id", uint64(resourceID)),
		slog.String("resource_type", resourceType),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))

		switch e := err.(type) {
		case ValidationErrors:
			attrs = append(attrs, slog.Int("validation_errors", len(e)))
		case *BusinessRuleError:
			attrs = append(attrs, slog.String("rule", e.Rule))
		case *PermissionError:
			attrs = append(attrs, slog.String("action", e.Action))
		case *RateLimitError:
			attrs = append(attrs, slog.Int("wait_seconds", e.WaitSeconds))
		case *RemoteServiceError:
			attrs = append(attrs, slog.String("remote_operation", e.Operation))
		}
	}

	l.logger.LogAttrs(ctx, level, operation+" "+status, attrs...)
}

// WithOperation starts the clock for one operation; LogResult on the
// returned value closes it.
func (l *ServiceLogger) WithOperation(ctx context.Context, operation string, userID string) *OperationLog {
	return &OperationLog{
		logger:    l,
		operation: operation,
		userID:    userID,
		started:   time.Now(),
		ctx:       ctx,
	}
}

type OperationLog struct {
	logger    *ServiceLogger
	operation string
	userID    string
	started   time.Time
	ctx       context.Context
}

func (o *OperationLog) LogResult(resourceID uint, resourceType string, err error) {
	o.logger.LogOperation(o.ctx, o.operation, o.userID, resourceID, resourceType, time.Since(o.started), err)
}
