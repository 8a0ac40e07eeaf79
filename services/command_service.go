// Package services holds the command and delivery behavior of the assistant.
// It orchestrates parser output, the mailbox and the leak guard without
// owning any transport or persistence details itself.
package services

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"

	"chat-courier/contract"
	"chat-courier/domain"
	"chat-courier/leakguard"
)

// Options are the command-layer toggles. The info and offline groups are
// independent: a disabled group's keywords fall through as unknown text.
type Options struct {
	Prefix                 string
	PublicReplies          bool
	EnableInfoCommands     bool
	EnableOfflineMessenger bool
}

type CommandService struct {
	log       *slog.Logger
	opts      Options
	mailbox   contract.IMailbox
	roster    contract.Roster
	world     contract.World
	transport contract.Transport
	guard     *leakguard.Guard
	deliverer contract.Deliverer
}

func NewCommandService(
	log *slog.Logger,
	opts Options,
	mailbox contract.IMailbox,
	roster contract.Roster,
	world contract.World,
	transport contract.Transport,
	guard *leakguard.Guard,
	deliverer contract.Deliverer,
) *CommandService {
	return &CommandService{
		log:       log,
		opts:      opts,
		mailbox:   mailbox,
		roster:    roster,
		world:     world,
		transport: transport,
		guard:     guard,
		deliverer: deliverer,
	}
}

var wordSplit = regexp.MustCompile(`\s+`)

// Handle interprets one parsed chat line. Anything that is not a known
// command behind the configured prefix is silently ignored.
func (s *CommandService) Handle(line domain.ChatLine) {
	body := strings.TrimSpace(line.Body)
	if !strings.HasPrefix(body, s.opts.Prefix) {
		return
	}
	cmdline := strings.TrimSpace(strings.TrimPrefix(body, s.opts.Prefix))
	if cmdline == "" {
		return
	}

	if s.opts.EnableInfoCommands {
		switch {
		case strings.EqualFold(cmdline, "help"):
			s.reply(line, s.helpText())
			return
		case strings.EqualFold(cmdline, "ping"):
			s.reply(line, s.pingText(line.Sender))
			return
		case strings.EqualFold(cmdline, "info"):
			s.reply(line, s.infoText())
			return
		}
	}

	if s.opts.EnableOfflineMessenger {
		switch {
		case strings.HasPrefix(strings.ToLower(cmdline), "leave "):
			s.handleLeave(line, cmdline)
			return
		case strings.EqualFold(cmdline, "inbox"):
			s.handleInbox(line)
			return
		}
	}
}

func (s *CommandService) helpText() string {
	p := s.opts.Prefix
	return fmt.Sprintf("Commands: %shelp, %sping, %sinfo, %sleave <player> <message>, %sinbox",
		p, p, p, p, p)
}

func (s *CommandService) pingText(sender string) string {
	participant, found := lo.Find(s.roster.Snapshot(), func(p domain.Participant) bool {
		return domain.CanonicalIdentity(p.Name) == domain.CanonicalIdentity(sender)
	})
	if !found {
		return "Ping: N/A (not visible in the roster)"
	}
	return fmt.Sprintf("Your ping: %d ms", participant.Latency.Milliseconds())
}

func (s *CommandService) infoText() string {
	hour, minute := s.world.TimeOfDay()
	return fmt.Sprintf("Online: %d | World: %s | Time: %02d:%02d",
		len(s.roster.Snapshot()), s.world.Name(), hour, minute)
}

// handleLeave stores an offline note. The note body is everything after the
// target and is never word-split further.
func (s *CommandService) handleLeave(line domain.ChatLine, cmdline string) {
	parts := wordSplit.Split(cmdline, 3)
	if len(parts) < 3 {
		s.reply(line, fmt.Sprintf("Usage: %sleave <player> <message>", s.opts.Prefix))
		return
	}
	target, message := parts[1], parts[2]

	info := whatlanggo.Detect(message)
	s.log.Debug("Storing offline note",
		"from", line.Sender, "target", target, "lang", info.Lang.Iso6391())

	if err := s.mailbox.Enqueue(target, line.Sender, s.guard.Inbound(message)); err != nil {
		// The store is the only copy; an unsaved note must never be
		// acknowledged as saved.
		s.log.Error("Failed to persist note", "target", target, "error", err)
		s.reply(line, fmt.Sprintf("Couldn't save your note for %s. Please try again.", target))
		return
	}
	s.reply(line, fmt.Sprintf(
		"Saved a note for %s. It will be delivered when they come online.", target))

	if s.isOnline(target) {
		s.deliverer.DeliverTo(target)
	}
}

func (s *CommandService) handleInbox(line domain.ChatLine) {
	notes, err := s.mailbox.Peek(line.Sender)
	if err != nil {
		// A failed read is not an empty inbox.
		s.log.Error("Failed to read mailbox", "identity", line.Sender, "error", err)
		s.reply(line, "Couldn't read your inbox right now. Please try again.")
		return
	}
	if len(notes) == 0 {
		s.reply(line, "You have no offline messages.")
		return
	}
	s.reply(line, fmt.Sprintf(
		"You have %d offline message(s). They'll arrive shortly.", len(notes)))
	s.deliverer.DeliverTo(line.Sender)
}

func (s *CommandService) isOnline(name string) bool {
	return lo.ContainsBy(s.roster.Snapshot(), func(p domain.Participant) bool {
		return domain.CanonicalIdentity(p.Name) == domain.CanonicalIdentity(name)
	})
}

// reply routes the answer the way the question arrived: private origins are
// answered privately when possible, public origins publicly unless public
// replies are disabled. Every reply passes the outbound leak guard.
func (s *CommandService) reply(line domain.ChatLine, text string) {
	text = s.guard.Outbound(text)
	if !line.Private && s.opts.PublicReplies {
		if err := s.transport.SendPublic(text); err != nil {
			s.log.Warn("Public send failed", "error", err)
		}
		return
	}
	if err := s.transport.SendPrivate(line.Sender, text); err != nil {
		// Expected degradation: fall back to the public channel.
		s.log.Debug("Private send unavailable, falling back", "recipient", line.Sender)
		if err := s.transport.SendPublic(line.Sender + ": " + text); err != nil {
			s.log.Warn("Public fallback failed", "error", err)
		}
	}
}
