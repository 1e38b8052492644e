// internal/pkg/email/types.go
package email

import (
	"fmt"
	"time"
)

// Email represents an email message
type Email struct {
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"html_content"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a file attached to an email
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// OrderNotificationData contains data for the staff new-order email
type OrderNotificationData struct {
	SiteName     string
	OrderID      uint
	PlacedAt     string
	CustomerName string
	Phone        string
	Comment      string
	Region       string
	City         string
	Address      string
	Zipcode      string
	Lines        []OrderLineData
	Total        string
	Year         int
}

// OrderLineData is one cart line rendered in the notification
type OrderLineData struct {
	Title    string
	Quantity int
	Total    string
}

// FormatPrice renders an amount of cents as a decimal string
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

// CurrentYear returns the year used in email footers
func CurrentYear() int {
	return time.Now().Year()
}
