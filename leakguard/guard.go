// Package leakguard defuses template syntax and positional telemetry before
// text is stored or sent back to the channel. A downstream renderer may
// evaluate brace expressions against live data, so known dangerous
// expressions are blocked outright, every remaining brace is converted to a
// harmless fullwidth lookalike, and raw coordinate patterns are masked.
package leakguard

import (
	"log/slog"
	"regexp"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"chat-courier/errors"
)

const (
	blockedMarker = "[blocked]"
	coordsMarker  = "[coords blocked]"
)

// Config mirrors the leak-guard options. Enabled is the master switch:
// when false both Inbound and Outbound return their input unchanged.
type Config struct {
	Enabled        bool
	StripBraces    bool
	BlockDangerous bool
	BlockRawCoords bool
}

// denyList names the variables a renderer must never resolve on our behalf:
// self position, orientation and facing, camera orientation, and server
// performance counters.
var denyList = []string{
	"player.x",
	"player.y",
	"player.z",
	"player.pos",
	"player.yaw",
	"player.pitch",
	"player.direction",
	"camera.yaw",
	"camera.pitch",
	"camera.direction",
	"server.tps",
	"cpu_avg",
}

var (
	// Innermost brace expressions only. Outer braces left by a nested
	// expression are still neutralized by the defusal stage.
	braceExpr = regexp.MustCompile(`\{[^{}]*\}`)
	tripleRe  = regexp.MustCompile(`-?\d{1,5}(?:\s*[,\s]\s*-?\d{1,5}){2}`)
	axisRe    = regexp.MustCompile(`(?i)\b(?:x|y|z|yaw|pitch)\s*[:=]\s*-?\d+(?:\.\d+)?`)

	defuser = strings.NewReplacer("{", "｛", "}", "｝")
)

type Guard struct {
	cfg     Config
	matcher *goahocorasick.Machine
	log     *slog.Logger
}

// New builds the Aho-Corasick automaton over the deny list once, the same
// way the moderation dictionary is prepared at startup.
func New(cfg Config, log *slog.Logger) (*Guard, error) {
	if len(denyList) == 0 {
		return nil, errors.ErrEmptyDenyList
	}
	patterns := make([][]rune, len(denyList))
	for i, word := range denyList {
		patterns[i] = []rune(strings.ToLower(word))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Guard{cfg: cfg, matcher: m, log: log}, nil
}

// Inbound neutralizes template syntax in a note about to be stored.
// Inner text is preserved verbatim; only the braces lose their meaning.
func (g *Guard) Inbound(text string) string {
	if !g.cfg.Enabled || !g.cfg.StripBraces {
		return text
	}
	return defuser.Replace(text)
}

// Outbound runs the full pipeline on a string about to be transmitted.
// Stages run in a fixed order and each one is idempotent, so text that was
// already sanitized passes through unchanged.
func (g *Guard) Outbound(text string) string {
	if !g.cfg.Enabled {
		return text
	}
	s := text
	if g.cfg.BlockDangerous {
		s = g.blockDangerous(s)
	}
	if g.cfg.StripBraces {
		s = defuser.Replace(s)
	}
	if g.cfg.BlockRawCoords {
		s = maskCoords(s)
	}
	return s
}

// blockDangerous discards whole brace expressions whose inner text
// references a deny-listed variable. The content is dropped, not escaped.
func (g *Guard) blockDangerous(text string) string {
	return braceExpr.ReplaceAllStringFunc(text, func(expr string) string {
		inner := []rune(strings.ToLower(expr[1 : len(expr)-1]))
		if len(g.matcher.MultiPatternSearch(inner, true)) == 0 {
			return expr
		}
		g.log.Debug("Blocked dangerous expression", "expr", expr)
		return blockedMarker
	})
}

// maskCoords replaces bare coordinate triples and labeled axis values.
// One match of either shape masks every match of both shapes.
func maskCoords(text string) string {
	if !tripleRe.MatchString(text) && !axisRe.MatchString(text) {
		return text
	}
	s := tripleRe.ReplaceAllString(text, coordsMarker)
	return axisRe.ReplaceAllString(s, coordsMarker)
}
