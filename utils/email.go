package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/rewear/thrift-donations-go/models"
)

// email request payload for the ZeptoMail API
type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	HtmlBody string        `json:"htmlbody"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type toRecipient struct {
	Email emailWithName `json:"email_address"`
}

type emailWithName struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// EmailConfigured reports whether the ZeptoMail environment is set. When it
// is not, confirmation mail is skipped entirely.
func EmailConfigured() bool {
	return os.Getenv("ZEPTO_API_URL") != "" &&
		os.Getenv("ZEPTO_API_KEY") != "" &&
		os.Getenv("EMAIL_FROM") != ""
}

// SendDonationConfirmation mails the donor their tracking code after a
// pickup request is scheduled.
func SendDonationConfirmation(d models.DonationRequest) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your clothing donation pickup on %s at %s is scheduled. "+
			"Track it with code <strong>%s</strong>.</p><p>Thank you for giving clothes a second life!</p>",
		d.DonorName, d.PickupDate, d.PickupTime, d.TrackingID,
	)
	return sendEmail(d.Email, d.DonorName, "Your donation pickup is scheduled", body)
}

// sendEmail sends an HTML email using the ZeptoMail HTTP API.
func sendEmail(to, toName, subject, body string) error {
	apiURL := os.Getenv("ZEPTO_API_URL") // e.g. https://api.zeptomail.com/v1.1/email
	apiKey := os.Getenv("ZEPTO_API_KEY")
	from := os.Getenv("EMAIL_FROM")

	if apiURL == "" || apiKey == "" || from == "" {
		return fmt.Errorf("missing required email config")
	}

	payload := emailRequest{
		From: emailAddress{Address: from},
		To: []toRecipient{
			{Email: emailWithName{Address: to, Name: toName}},
		},
		Subject:  subject,
		HtmlBody: body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zeptomail API error: %s", resp.Status)
	}
	return nil
}
