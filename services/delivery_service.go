package services

import (
	"fmt"
	"log/slog"

	"chat-courier/contract"
	"chat-courier/domain"
	"chat-courier/leakguard"
)

type DeliveryService struct {
	log          *slog.Logger
	mailbox      contract.IMailbox
	transport    contract.Transport
	guard        *leakguard.Guard
	notifySender bool
}

func NewDeliveryService(
	log *slog.Logger,
	mailbox contract.IMailbox,
	transport contract.Transport,
	guard *leakguard.Guard,
	notifySender bool,
) *DeliveryService {
	return &DeliveryService{
		log:          log,
		mailbox:      mailbox,
		transport:    transport,
		guard:        guard,
		notifySender: notifySender,
	}
}

// DeliverTo drains the recipient's mailbox in one pass and transmits every
// note, oldest first. Notes leave the store on the delivery attempt
// regardless of which channel carries them.
func (d *DeliveryService) DeliverTo(displayName string) {
	notes, err := d.mailbox.Drain(domain.CanonicalIdentity(displayName))
	if err != nil {
		d.log.Error("Failed to drain mailbox", "recipient", displayName, "error", err)
		return
	}
	if len(notes) == 0 {
		return
	}
	d.log.Info("Delivering offline notes", "recipient", displayName, "count", len(notes))

	for _, note := range notes {
		line := fmt.Sprintf("[Offline message] %s (%s): %s",
			note.From, note.At.Format("Jan 02 15:04"), note.Body)
		d.send(displayName, line)

		if d.notifySender {
			d.send(note.From, fmt.Sprintf("Your note to %s was delivered.", displayName))
		}
	}
}

// send attempts the private channel first and falls back to a public line
// prefixed with the recipient's name. Private failure is a normal outcome.
func (d *DeliveryService) send(recipient, text string) {
	text = d.guard.Outbound(text)
	if err := d.transport.SendPrivate(recipient, text); err == nil {
		return
	}
	if err := d.transport.SendPublic(recipient + ": " + text); err != nil {
		d.log.Warn("Public fallback failed", "recipient", recipient, "error", err)
	}
}
