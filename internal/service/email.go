package service

import (
	"context"
	"fmt"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns nil when no API key is configured; callers
// treat a nil EmailService as "email disabled".
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	if apiKey == "" {
		logger.Info("email sending disabled, no api key configured")
		return nil
	}
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Bonjour %s,\n\nVotre compte AgriMarket est pret. "+
		"Publiez vos annonces, louez du materiel et suivez la sante de vos cultures.\n\nL'equipe AgriMarket", name)
	return s.send(email, "Bienvenue sur AgriMarket", body)
}

func (s *emailService) SendReservationRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentName, startDate, endDate string) error {
	body := fmt.Sprintf("Bonjour,\n\n%s souhaite reserver votre equipement \"%s\" du %s au %s. "+
		"Connectez-vous pour confirmer ou refuser la demande.\n\nL'equipe AgriMarket",
		renterName, equipmentName, startDate, endDate)
	return s.send(ownerEmail, "Nouvelle demande de reservation", body)
}

func (s *emailService) SendReservationStatusNotification(ctx context.Context, renterEmail, equipmentName string, status domain.ReservationStatus) error {
	body := fmt.Sprintf("Bonjour,\n\nVotre reservation de \"%s\" est maintenant: %s.\n\nL'equipe AgriMarket",
		equipmentName, status)
	return s.send(renterEmail, "Mise a jour de votre reservation", body)
}
