// internal/domain/order/notifier.go
package order

import (
	"context"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Snapshot is the structured view of a freshly placed order handed to
// the notification collaborator. It carries everything the staff
// message needs so the collaborator never reaches back into storage.
type Snapshot struct {
	OrderID    uint           `json:"order_id"`
	PlacedAt   time.Time      `json:"placed_at"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Phone      string         `json:"phone"`
	Comment    string         `json:"comment,omitempty"`
	Region     string         `json:"region"`
	City       string         `json:"city"`
	Address    string         `json:"address"`
	Zipcode    string         `json:"zipcode,omitempty"`
	Lines      []SnapshotLine `json:"lines"`
	FinalPrice int64          `json:"final_price"` // In cents
}

// SnapshotLine is one cart line in the snapshot
type SnapshotLine struct {
	ProductID    uint   `json:"product_id"`
	ProductTitle string `json:"product_title"`
	Quantity     int    `json:"quantity"`
	FinalPrice   int64  `json:"final_price"`
}

// Notifier delivers a new-order message to staff. Implementations are
// best-effort: PlaceOrder logs their errors and never rolls back a
// committed order over a failed notification.
type Notifier interface {
	NotifyNewOrder(ctx context.Context, snapshot Snapshot, recipients []string) error
}

// BuildSnapshot assembles the notification payload from a created order
// and its consumed cart
func BuildSnapshot(o *Order, c *cart.Cart) Snapshot {
	lines := make([]SnapshotLine, len(c.LineItems))
	for i, item := range c.LineItems {
		lines[i] = SnapshotLine{
			ProductID:    item.ProductID,
			ProductTitle: item.Product.Title,
			Quantity:     item.Quantity,
			FinalPrice:   item.FinalPrice,
		}
	}

	return Snapshot{
		OrderID:    o.ID,
		PlacedAt:   o.CreatedAt,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Phone:      o.Phone,
		Comment:    o.Comment,
		Region:     o.ShippingAddress.Region,
		City:       o.ShippingAddress.City,
		Address:    o.ShippingAddress.Address,
		Zipcode:    o.ShippingAddress.Zipcode,
		Lines:      lines,
		FinalPrice: c.FinalPrice,
	}
}
