package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/noursalon/salon-scheduler/internal/config"
)

const twilioMessagesURL = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// TwilioWhatsApp sends WhatsApp messages through Twilio's REST API.
type TwilioWhatsApp struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

func NewTwilioWhatsApp(cfg *config.Config) *TwilioWhatsApp {
	return &TwilioWhatsApp{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioWhatsAppFrom,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *TwilioWhatsApp) Send(ctx context.Context, toPhone string, body string) error {

	form := url.Values{}
	form.Set("To", "whatsapp:"+toPhone)
	form.Set("From", "whatsapp:"+s.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf(twilioMessagesURL, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio responded %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
