package notify

import (
	"fmt"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// twilioSender delivers SMS through the Twilio REST API.
type twilioSender struct {
	client *twilio.RestClient
	from   string
}

// newTwilioSenderFromEnv returns nil when Twilio is not configured, which
// disables SMS dispatch entirely.
func newTwilioSenderFromEnv() SMSSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if accountSid == "" || authToken == "" || from == "" {
		return nil
	}
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *twilioSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("message accepted but no SID returned")
	}
	return nil
}
