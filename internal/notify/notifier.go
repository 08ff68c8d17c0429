package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Notifier собирает письмо и ставит его отправку в фоновую очередь. Ошибки отправки только логируются.
type Notifier struct {
	mailer Mailer
	runner Runner
	from   string
	l      *logrus.Entry
}

func NewNotifier(mailer Mailer, runner Runner, from string, l *logrus.Logger) *Notifier {
	return &Notifier{
		mailer: mailer,
		runner: runner,
		from:   from,
		l: l.WithFields(logrus.Fields{
			"component": "notify",
			"module":    "notifier",
		}),
	}
}

func (n *Notifier) OrderPlaced(order domain.Order) {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s (%s) %s\n", item.Quantity, item.Name, item.Size, money(item.UnitPrice, order.Currency))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", money(order.Subtotal, order.Currency))
	fmt.Fprintf(&b, "Shipping: %s\n", money(order.Shipping, order.Currency))
	if order.CreditApplied.IsPositive() {
		fmt.Fprintf(&b, "Store credit: -%s\n", money(order.CreditApplied, order.Currency))
	}
	fmt.Fprintf(&b, "Total: %s\n", money(order.Total, order.Currency))

	n.send("order placed", order, "Order confirmed", b.String())
}

func (n *Notifier) OrderDelivered(order domain.Order) {
	text := fmt.Sprintf("Your order %s has been delivered.\n", order.ID)
	n.send("order delivered", order, "Order delivered", text)
}

func (n *Notifier) OrderCancelled(order domain.Order) {
	text := fmt.Sprintf("Your order %s has been cancelled.\n", order.ID)
	if order.CreditApplied.IsPositive() {
		text += fmt.Sprintf("Store credit of %s has been returned to your balance.\n",
			money(order.CreditApplied, order.Currency))
	}
	n.send("order cancelled", order, "Order cancelled", text)
}

func (n *Notifier) OrderRefunded(order domain.Order, amount decimal.Decimal) {
	text := fmt.Sprintf("A refund of %s for order %s has been issued.\n", money(amount, order.Currency), order.ID)
	n.send("order refunded", order, "Refund issued", text)
}

func (n *Notifier) send(kind string, order domain.Order, subject, text string) {
	l := n.l.WithFields(logrus.Fields{
		"orderID": order.ID,
		"email":   kind,
	})
	if order.Email == "" {
		l.Warn("order has no email, notification skipped")
		return
	}

	msg := Message{
		From:    n.from,
		To:      order.Email,
		Subject: fmt.Sprintf("%s (#%s)", subject, shortID(order)),
		Text:    text,
	}
	n.runner.Go("email "+kind+" "+order.ID.String(), func(ctx context.Context) error {
		if err := n.mailer.Send(ctx, msg); err != nil {
			l.WithError(err).Error("send email")
			return fmt.Errorf("send %s email: %w", kind, err)
		}
		return nil
	})
}

func money(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + strings.ToUpper(currency) //nolint:mnd
}

func shortID(order domain.Order) string {
	return strings.ToUpper(order.ID.String()[:8])
}
