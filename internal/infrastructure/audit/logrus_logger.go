// Package audit logs business events through logrus.
package audit

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/you/homestay/domain"
)

// LogrusAuditLogger implements domain.AuditLogger on top of a logrus logger.
type LogrusAuditLogger struct {
	log *logrus.Logger
}

// NewLogrusAuditLogger creates an audit logger writing to log.
func NewLogrusAuditLogger(log *logrus.Logger) domain.AuditLogger {
	return &LogrusAuditLogger{log: log}
}

// LogEvent implements domain.AuditLogger
func (l *LogrusAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) error {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"success":    event.Success,
	}
	if event.UserID != "" {
		fields["user_id"] = event.UserID
	}
	if event.Email != "" {
		fields["email"] = event.Email
	}
	if event.Role != "" {
		fields["role"] = event.Role
	}
	if event.Screen != "" {
		fields["screen"] = event.Screen
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := l.log.WithFields(fields)
	if event.Success {
		entry.Info(string(event.EventType))
	} else {
		entry.WithField("error", event.ErrorMsg).Warn(string(event.EventType))
	}
	return nil
}

// Nop returns an audit logger that discards everything, for tests and for
// callers that do not care about audit output.
func Nop() domain.AuditLogger {
	log := logrus.New()
	log.SetOutput(nopWriter{})
	return &LogrusAuditLogger{log: log}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
