// internal/domain/order/notify_test.go
package order

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyNewOrder(ctx context.Context, snapshot Snapshot, recipients []string) error {
	args := m.Called(ctx, snapshot, recipients)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func notifyFixture() (*Order, *cart.Cart) {
	o := &Order{
		ID:        7,
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+15551234567",
	}
	c := &cart.Cart{
		ID:         3,
		FinalPrice: 20000,
		LineItems: []cart.LineItem{
			{ProductID: 1, Quantity: 2, FinalPrice: 20000, Product: catalog.Product{ID: 1, Title: "Phone Alpha"}},
		},
	}
	return o, c
}

func TestDeliverNotification(t *testing.T) {
	notifier := new(mockNotifier)
	svc := &Service{notifier: notifier, logger: quietLogger()}

	o, c := notifyFixture()
	recipients := []string{"staff@example.com"}

	notifier.On("NotifyNewOrder", mock.Anything, mock.MatchedBy(func(s Snapshot) bool {
		return s.OrderID == 7 && s.FinalPrice == 20000 && len(s.Lines) == 1
	}), recipients).Return(nil).Once()

	svc.deliverNotification(context.Background(), o, c, recipients)

	notifier.AssertExpectations(t)
}

func TestDeliverNotificationSwallowsFailure(t *testing.T) {
	notifier := new(mockNotifier)
	svc := &Service{notifier: notifier, logger: quietLogger()}

	o, c := notifyFixture()

	notifier.On("NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("smtp: connection refused")).Once()

	// Must not panic or propagate; the order is already committed
	assert.NotPanics(t, func() {
		svc.deliverNotification(context.Background(), o, c, []string{"staff@example.com"})
	})

	notifier.AssertExpectations(t)
}
