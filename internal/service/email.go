package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"fairway-backend/internal/logger"
	"fairway-backend/internal/workflow"
)

type emailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

func NewEmailService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &emailService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *emailService) SendDecisionNotification(ctx context.Context, kind workflow.Kind, requestID, decision, message string) error {
	subject := fmt.Sprintf("Request %s - %s", decision, kind.Label())
	body := fmt.Sprintf(
		"The %s request %s has been %s.\n\n%s\n\nBest regards,\nThe Fairway Admin Team",
		kind.Label(), requestID, decision, message,
	)
	return s.send(subject, body)
}

func (s *emailService) SendPendingDigest(ctx context.Context, counts map[string]int) error {
	var total int
	collections := make([]string, 0, len(counts))
	for c, n := range counts {
		collections = append(collections, c)
		total += n
	}
	sort.Strings(collections)

	var b strings.Builder
	fmt.Fprintf(&b, "There are %d requests awaiting review:\n\n", total)
	for _, c := range collections {
		fmt.Fprintf(&b, "  %s: %d\n", c, counts[c])
	}
	b.WriteString("\nBest regards,\nThe Fairway Admin Team")

	return s.send("Pending request digest", b.String())
}

func (s *emailService) send(subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Admin", s.adminEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "subject", subject)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
