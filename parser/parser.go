// Package parser classifies raw chat lines into sender, body and visibility.
// External channels render messages with no shared schema, so recognition is
// pattern based and deliberately biased towards false negatives: a missed
// command is safe, a misclassified sender is not.
package parser

import (
	"chat-courier/domain"
	"regexp"
	"strings"
)

type lineKind int

const (
	kindPublic lineKind = iota
	kindDirect
	kindWhisper
	kindBracketPM
)

type matcher struct {
	kind lineKind
	re   *regexp.Regexp
}

// Names are 3 to 16 alphanumeric-or-underscore characters. The length and
// charset limits keep arbitrary prose with a colon in it from matching.
const name = `([A-Za-z0-9_]{3,16})`

// Matchers are tried in order, first match wins. Decorated public names may
// omit the connector; a bare name needs an explicit ':' or '»' after it.
var matchers = []matcher{
	{kindPublic, regexp.MustCompile(`^\s*<` + name + `>\s*[:»>]?\s*(.+)$`)},
	{kindPublic, regexp.MustCompile(`^\s*\[` + name + `\]\s*[:»>]?\s*(.+)$`)},
	{kindPublic, regexp.MustCompile(`^\s*` + name + `\s*[:»]\s*(.+)$`)},
	{kindDirect, regexp.MustCompile(`(?i)^\s*(?:from\s+)?` + name + `\s*->\s*(?:me|you)\s*:?\s*(.+)$`)},
	{kindWhisper, regexp.MustCompile(`(?i)^\s*` + name + `\s+whispers\s+to\s+you\s*:?\s*(.+)$`)},
	{kindBracketPM, regexp.MustCompile(`(?i)^\s*\[pm\]\s*` + name + `\s*:?\s*(.+)$`)},
}

// Parse tries every known chat line shape against raw.
// Lines matching no shape are not messages this system understands.
func Parse(raw string) (domain.ChatLine, bool) {
	for _, m := range matchers {
		groups := m.re.FindStringSubmatch(raw)
		if groups == nil {
			continue
		}
		body := strings.TrimSpace(groups[2])
		if body == "" {
			continue
		}
		return domain.ChatLine{
			Sender:  groups[1],
			Body:    body,
			Private: m.kind != kindPublic,
		}, true
	}
	return domain.ChatLine{}, false
}
