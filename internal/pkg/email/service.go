// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// EmailService sends transactional mail and implements the order
// notifier for staff.
type EmailService struct {
	config     *config.Config
	pdfService *pdf.Service
	logger     *logrus.Logger
	client     *http.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config, pdfService *pdf.Service, logger *logrus.Logger) *EmailService {
	return &EmailService{
		config:     cfg,
		pdfService: pdfService,
		logger:     logger,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// NotifyNewOrder mails the staff list about a freshly placed order,
// with a PDF summary attached when generation succeeds.
func (s *EmailService) NotifyNewOrder(ctx context.Context, snapshot order.Snapshot, recipients []string) error {
	data := OrderNotificationData{
		SiteName:     s.config.App.Name,
		OrderID:      snapshot.OrderID,
		PlacedAt:     snapshot.PlacedAt.Format("2006-01-02 15:04"),
		CustomerName: snapshot.FirstName + " " + snapshot.LastName,
		Phone:        snapshot.Phone,
		Comment:      snapshot.Comment,
		Region:       snapshot.Region,
		City:         snapshot.City,
		Address:      snapshot.Address,
		Zipcode:      snapshot.Zipcode,
		Total:        FormatPrice(snapshot.FinalPrice),
		Year:         CurrentYear(),
	}
	for _, line := range snapshot.Lines {
		data.Lines = append(data.Lines, OrderLineData{
			Title:    line.ProductTitle,
			Quantity: line.Quantity,
			Total:    FormatPrice(line.FinalPrice),
		})
	}

	htmlContent, err := s.renderOrderNotification(data)
	if err != nil {
		return fmt.Errorf("failed to render order notification: %w", err)
	}

	msg := &Email{
		To:          recipients,
		Subject:     fmt.Sprintf("New order #%d", snapshot.OrderID),
		HTMLContent: htmlContent,
	}

	// A summary that fails to render never blocks the mail itself
	if summary, err := s.pdfService.GenerateOrderSummary(snapshot); err != nil {
		s.logger.WithError(err).WithField("order_id", snapshot.OrderID).
			Warn("Failed to generate order summary PDF; sending notification without it")
	} else {
		msg.Attachments = append(msg.Attachments, Attachment{
			Filename:    fmt.Sprintf("order-%d.pdf", snapshot.OrderID),
			ContentType: "application/pdf",
			Content:     summary.Bytes(),
		})
	}

	return s.SendEmail(ctx, msg)
}

// renderOrderNotification renders the staff notification body
func (s *EmailService) renderOrderNotification(data OrderNotificationData) (string, error) {
	tmpl := template.Must(template.New("order_notification").Parse(orderNotificationTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

const orderNotificationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New order #{{.OrderID}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">New order #{{.OrderID}}</h1>
        <p>Placed at {{.PlacedAt}}.</p>
        <h3>Customer</h3>
        <p>{{.CustomerName}}<br>Phone: {{.Phone}}</p>
        {{if .Comment}}<p>Comment: {{.Comment}}</p>{{end}}
        <h3>Shipping</h3>
        <p>{{.Region}}, {{.City}}<br>{{.Address}}{{if .Zipcode}}<br>Zipcode: {{.Zipcode}}{{end}}</p>
        <h3>Items</h3>
        <table style="width: 100%; border-collapse: collapse;">
            <tr>
                <th style="text-align: left; border-bottom: 1px solid #ddd; padding: 8px;">Product</th>
                <th style="text-align: right; border-bottom: 1px solid #ddd; padding: 8px;">Qty</th>
                <th style="text-align: right; border-bottom: 1px solid #ddd; padding: 8px;">Total</th>
            </tr>
            {{range .Lines}}
            <tr>
                <td style="padding: 8px;">{{.Title}}</td>
                <td style="text-align: right; padding: 8px;">{{.Quantity}}</td>
                <td style="text-align: right; padding: 8px;">{{.Total}}</td>
            </tr>
            {{end}}
        </table>
        <p style="font-size: 18px;"><strong>Total: {{.Total}}</strong></p>
        <hr>
        <p style="font-size: 12px; color: #666;">
            &copy; {{.Year}} {{.SiteName}}. Automated notification.
        </p>
    </div>
</body>
</html>`
