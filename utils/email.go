// utils/email.go
package utils

import (
	"fmt"
	"net/http"
	"plantnet/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		panic("SENDGRID_API_KEY is not set in environment variables")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("plantNet", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

// OrderConfirmationEmail builds the customer-facing confirmation for a
// freshly placed order.
func OrderConfirmationEmail(order models.Order) (subject, html string) {
	subject = "Order Confirmation - plantNet"
	html = fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order for <strong>%d</strong> plant(s) has been placed successfully.<br><br>Total Amount: <strong>$%.2f</strong><br><br>Thank you for shopping with plantNet!",
		order.Customer.Name,
		order.Quantity,
		order.Price,
	)
	return subject, html
}

// SellerOrderAlertEmail builds the seller-facing notification that one
// of their plants was ordered.
func SellerOrderAlertEmail(order models.Order) (subject, html string) {
	subject = "You Have a New Order - plantNet"
	html = fmt.Sprintf(
		"<strong>Good news!</strong><br><br>%s just placed an order for %d of your plant(s) (plant id: %s).<br><br>Order total: <strong>$%.2f</strong><br><br>Please process it from your dashboard.",
		order.Customer.Email,
		order.Quantity,
		order.PlantID,
		order.Price,
	)
	return subject, html
}
