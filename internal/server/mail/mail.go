// Package mail delivers one-time codes to users.
package mail

import (
	"context"
	"fmt"

	"github.com/mpetrovs/newsbrief/internal/logging"
)

// Sender delivers an OTP message to the given address.
type Sender interface {
	SendOTP(ctx context.Context, email, code, subject string) error
}

// LogSender writes the message to the application log instead of sending it.
// Used in development, where no SMTP relay is available.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendOTP(ctx context.Context, email, code, subject string) error {
	s.logger.Info(ctx, fmt.Sprintf("mail to %s: %s", email, subject), "code", code)
	return nil
}
