package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"campusrent-backend/internal/domain"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
	adminTo  string
}

func NewEmailService(apiKey, from, fromName, adminTo string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		adminTo:  adminTo,
	}
}

// SendOverdueDigest mails the admin address a summary of rentals past their
// due date. Records stay ACTIVE until the actual return; this is a reminder,
// not a settlement.
func (s *emailService) SendOverdueDigest(ctx context.Context, records []domain.RentalRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d rental(s) past due as of %s:\n\n", len(records), now.Format("2006-01-02 15:04"))
	for _, rec := range records {
		overdueFor := now.Sub(rec.DueDate).Round(time.Hour)
		fmt.Fprintf(&b, "- %s (%s) holds %q, due %s, overdue for %s\n",
			rec.UserName, rec.UserID, rec.ItemName, rec.DueDate.Format("2006-01-02"), overdueFor)
	}
	b.WriteString("\nLate returns refund 50% of the deposit.\n")

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", s.adminTo)
	subject := fmt.Sprintf("Overdue rentals: %d outstanding", len(records))
	message := mail.NewSingleEmail(from, subject, to, b.String(), "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send overdue digest: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
