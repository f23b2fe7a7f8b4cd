package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"mountainride-backend/internal/config"
	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/utils"
)

// sender delivers one composed message
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	from   string
	sender sender
}

// NewEmailService returns an SMTP-backed EmailService, or one that only logs
// when SMTP is disabled.
func NewEmailService(cfg config.SMTPConfig) EmailService {
	if !cfg.Enabled {
		return &logEmailService{}
	}
	return &emailService{
		from:   cfg.From,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	logger.ExternalServiceCall("smtp", "send", "to", to, "subject", subject)
	err := s.sender.DialAndSend(m)
	logger.ExternalServiceResult("smtp", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error {
	subject, body := rentalConfirmationMessage(customer, rental)
	return s.send(customer.Email, subject, body)
}

func (s *emailService) SendRentalCompletion(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error {
	subject, body := rentalCompletionMessage(customer, rental)
	return s.send(customer.Email, subject, body)
}

func (s *emailService) SendOverdueReport(ctx context.Context, to string, overdue []domain.Rental) error {
	if to == "" {
		return nil
	}
	subject, body := overdueReportMessage(overdue)
	return s.send(to, subject, body)
}

type logEmailService struct{}

func (logEmailService) SendRentalConfirmation(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error {
	logger.Info("Rental confirmation (smtp disabled)", "to", customer.Email, "code", rental.Code)
	return nil
}

func (logEmailService) SendRentalCompletion(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error {
	logger.Info("Rental completion (smtp disabled)", "to", customer.Email, "code", rental.Code)
	return nil
}

func (logEmailService) SendOverdueReport(ctx context.Context, to string, overdue []domain.Rental) error {
	logger.Info("Overdue report (smtp disabled)", "to", to, "count", len(overdue))
	return nil
}

func rentalConfirmationMessage(customer *domain.Customer, rental *domain.Rental) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nYour rental %s has started.\n\n", customer.FirstName, rental.Code)
	for _, item := range rental.Items {
		fmt.Fprintf(&b, "- product #%d: %d day(s) at %s/day = %s\n",
			item.ProductID, item.Duration, utils.FormatCents(item.DailyPriceCents), utils.FormatCents(item.FinalPriceCents))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\nBest regards,\nThe Mountain Ride Team", utils.FormatCents(rental.TotalPriceCents))
	return fmt.Sprintf("Your rental %s", rental.Code), b.String()
}

func rentalCompletionMessage(customer *domain.Customer, rental *domain.Rental) (string, string) {
	body := fmt.Sprintf("Hello %s,\n\nYour rental %s is complete. Thank you for returning the equipment.", customer.FirstName, rental.Code)
	if rental.EndDate != nil {
		body += fmt.Sprintf("\n\nReturned on: %s", utils.FormatDate(*rental.EndDate))
	}
	body += "\n\nBest regards,\nThe Mountain Ride Team"
	return fmt.Sprintf("Rental %s completed", rental.Code), body
}

func overdueReportMessage(overdue []domain.Rental) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d rental(s) are past their return date:\n\n", len(overdue))
	for _, r := range overdue {
		started := "unknown"
		if r.StartDate != nil {
			started = utils.FormatDate(*r.StartDate)
		}
		fmt.Fprintf(&b, "- %s (customer #%d), started %s\n", r.Code, r.CustomerID, started)
	}
	return fmt.Sprintf("Overdue rentals: %d", len(overdue)), b.String()
}
