// internal/pkg/email/email_test.go
package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

var _ order.Notifier = (*EmailService)(nil)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "1.00", FormatPrice(100))
	assert.Equal(t, "75.50", FormatPrice(7550))
	assert.Equal(t, "200.00", FormatPrice(20000))
	assert.Equal(t, "0.05", FormatPrice(5))
}

func TestBuildMIMEMessagePlain(t *testing.T) {
	msg := string(buildMIMEMessage("Storefront <shop@example.com>", &Email{
		To:          []string{"staff@example.com", "ops@example.com"},
		Subject:     "New order #7",
		HTMLContent: "<p>Order placed</p>",
	}))

	assert.Contains(t, msg, "From: Storefront <shop@example.com>\r\n")
	assert.Contains(t, msg, "To: staff@example.com, ops@example.com\r\n")
	assert.Contains(t, msg, "Subject: New order #7\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=\"utf-8\"\r\n")
	assert.Contains(t, msg, "<p>Order placed</p>")
	assert.NotContains(t, msg, "multipart/mixed")
}

func TestBuildMIMEMessageWithAttachment(t *testing.T) {
	content := make([]byte, 200)
	for i := range content {
		content[i] = byte(i % 251)
	}

	msg := string(buildMIMEMessage("shop@example.com", &Email{
		To:          []string{"staff@example.com"},
		Subject:     "New order #7",
		HTMLContent: "<p>Order placed</p>",
		Attachments: []Attachment{
			{Filename: "order-7.pdf", ContentType: "application/pdf", Content: content},
		},
	}))

	assert.Contains(t, msg, "Content-Type: multipart/mixed; boundary=\"storefront-mail-boundary\"")
	assert.Contains(t, msg, "Content-Disposition: attachment; filename=\"order-7.pdf\"")
	assert.Contains(t, msg, "Content-Transfer-Encoding: base64")
	assert.Contains(t, msg, "--storefront-mail-boundary--\r\n")

	// Encoded body lines stay within the RFC 2045 limit
	inBody := false
	for _, line := range strings.Split(msg, "\r\n") {
		if strings.HasPrefix(line, "Content-Transfer-Encoding") {
			inBody = true
			continue
		}
		if inBody && strings.HasPrefix(line, "--") {
			inBody = false
		}
		if inBody {
			assert.LessOrEqual(t, len(line), 76)
		}
	}
}
