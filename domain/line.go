// Package domain contains core concepts of the chat assistant.
// This file defines the parsed chat line consumed by the command layer.
// No runtime, network, or UI logic should be added here.
package domain

// ChatLine is one recognized incoming chat message.
// Sender keeps its original case; use CanonicalIdentity for lookups.
type ChatLine struct {
	Sender  string
	Body    string
	Private bool
}
