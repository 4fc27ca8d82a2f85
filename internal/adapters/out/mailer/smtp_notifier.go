// Package mailer delivers lifecycle decision emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"foodbank/internal/core/domain/model/order"
)

// Config carries the SMTP connection and recipient resolution settings.
// Partner addresses are derived from the organization name; the staff inbox
// receives a copy of every decision.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string

	StaffInbox         string
	PartnerEmailDomain string
}

// sendFunc matches smtp.SendMail; swapped in tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier implements ports.Notifier over plain SMTP with text bodies.
// Delivery is best effort: callers treat a returned error as a warning, the
// committed transition stands either way.
type SMTPNotifier struct {
	cfg  Config
	send sendFunc
}

// NewSMTPNotifier creates a notifier for the given SMTP configuration.
func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

// NotifyApproved tells the partner and staff an order was approved.
func (n *SMTPNotifier) NotifyApproved(ctx context.Context, aggregate *order.Order) error {
	return n.deliver(ctx, aggregate, "Order approved",
		"Your order has been approved.")
}

// NotifyRejected tells the partner and staff an order was rejected.
func (n *SMTPNotifier) NotifyRejected(ctx context.Context, aggregate *order.Order) error {
	return n.deliver(ctx, aggregate, "Order rejected",
		"Your order has been rejected. Please contact the warehouse if you have questions.")
}

// NotifyModifiedAndApproved tells both parties an order was edited by staff
// and approved in the same step.
func (n *SMTPNotifier) NotifyModifiedAndApproved(ctx context.Context, aggregate *order.Order) error {
	return n.deliver(ctx, aggregate, "Order modified and approved",
		"Your order has been modified by warehouse staff and approved. Please review the updated details.")
}

func (n *SMTPNotifier) deliver(ctx context.Context, aggregate *order.Order, subject, lead string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := n.recipients(aggregate)
	msg := n.message(aggregate, to, subject, lead)

	addr := n.cfg.Host + ":" + n.cfg.Port
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	return n.send(addr, auth, n.cfg.From, to, msg)
}

// recipients resolves the partner address from the organization name plus
// the staff inbox.
func (n *SMTPNotifier) recipients(aggregate *order.Order) []string {
	local := strings.ToLower(strings.ReplaceAll(aggregate.Organization(), " ", "."))
	partner := local + "@" + n.cfg.PartnerEmailDomain

	to := []string{partner}
	if n.cfg.StaffInbox != "" {
		to = append(to, n.cfg.StaffInbox)
	}
	return to
}

func (n *SMTPNotifier) message(aggregate *order.Order, to []string, subject, lead string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "%s\r\n\r\n", lead)
	fmt.Fprintf(&b, "Organization: %s\r\n", aggregate.Organization())
	fmt.Fprintf(&b, "Order ID: %s\r\n", aggregate.ID())
	fmt.Fprintf(&b, "Pickup: %s\r\n", aggregate.Pickup().Format("Monday, January 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&b, "Status: %s\r\n", aggregate.Status())

	if comment := aggregate.Comment(); comment != "" {
		fmt.Fprintf(&b, "Comment: %s\r\n", comment)
	}

	return []byte(b.String())
}
