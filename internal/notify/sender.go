package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/noursalon/salon-scheduler/internal/config"
	"github.com/noursalon/salon-scheduler/internal/logger"
)

// Sender delivers one message to one phone number. Delivery is best-effort
// everywhere it is used; no caller treats an error as fatal.
type Sender interface {
	Send(ctx context.Context, toPhone string, body string) error
}

// NewSender picks the real WhatsApp sender when Twilio credentials are
// configured, otherwise a no-op that only logs.
func NewSender(cfg *config.Config) Sender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioWhatsAppFrom == "" {
		logger.Get().Warn("twilio credentials missing, notifications disabled")
		return &noopSender{log: logger.Get()}
	}
	return NewTwilioWhatsApp(cfg)
}

type noopSender struct {
	log *zap.Logger
}

func (s *noopSender) Send(ctx context.Context, toPhone string, body string) error {
	s.log.Debug("notification skipped (no sender configured)",
		zap.String("to", toPhone),
	)
	return nil
}
