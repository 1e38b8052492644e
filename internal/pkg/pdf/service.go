// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateOrderSummary renders a printable summary of a placed order.
// Staff receive it as an attachment on the new-order notification.
func (s *Service) GenerateOrderSummary(snapshot order.Snapshot) (*bytes.Buffer, error) {
	data := summaryData{
		Snapshot: snapshot,
		PlacedAt: snapshot.PlacedAt.Format("January 2, 2006 15:04"),
		Total:    formatCents(snapshot.FinalPrice),
		Company: companyInfo{
			Name:    s.config.App.CompanyName,
			Address: s.config.App.CompanyAddress,
			Phone:   s.config.App.CompanyPhone,
			Email:   s.config.App.CompanyEmail,
		},
	}
	for _, line := range snapshot.Lines {
		data.Lines = append(data.Lines, summaryLine{
			Title:    line.ProductTitle,
			Quantity: line.Quantity,
			Total:    formatCents(line.FinalPrice),
		})
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data summaryData) (string, error) {
	tmpl := template.Must(template.New("order_summary").Parse(orderSummaryTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

type summaryData struct {
	Snapshot order.Snapshot
	PlacedAt string
	Total    string
	Lines    []summaryLine
	Company  companyInfo
}

type summaryLine struct {
	Title    string
	Quantity int
	Total    string
}

type companyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Order summary HTML template
const orderSummaryTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order #{{.Snapshot.OrderID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .order-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .contact-shipping {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
        }
        .contact-info, .shipping-info {
            flex: 1;
            margin-right: 20px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Address}}</p>
            <p>Phone: {{.Company.Phone}}</p>
            <p>Email: {{.Company.Email}}</p>
        </div>
        <div class="order-info">
            <div class="order-title">NEW ORDER</div>
            <p><strong>Order #:</strong> {{.Snapshot.OrderID}}</p>
            <p><strong>Placed:</strong> {{.PlacedAt}}</p>
        </div>
    </div>

    <div class="contact-shipping">
        <div class="contact-info">
            <div class="section-title">Customer:</div>
            <p><strong>{{.Snapshot.FirstName}} {{.Snapshot.LastName}}</strong></p>
            <p>Phone: {{.Snapshot.Phone}}</p>
            {{if .Snapshot.Comment}}<p>Comment: {{.Snapshot.Comment}}</p>{{end}}
        </div>
        <div class="shipping-info">
            <div class="section-title">Ship To:</div>
            <p>{{.Snapshot.Region}}, {{.Snapshot.City}}</p>
            <p>{{.Snapshot.Address}}</p>
            {{if .Snapshot.Zipcode}}<p>Zipcode: {{.Snapshot.Zipcode}}</p>{{end}}
        </div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Product</th>
                <th class="qty-col">Qty</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Lines}}
            <tr>
                <td><strong>{{.Title}}</strong></td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="total-col">{{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">{{.Total}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Generated automatically when the order was placed.</p>
    </div>
</body>
</html>
`
