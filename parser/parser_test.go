package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chat-courier/domain"
)

func TestParse_RecognizedShapes(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		raw      string
		expected domain.ChatLine
	}{
		{
			name:     "Angle decorated public chat",
			raw:      "<Steve> !leave Alex don't wait up",
			expected: domain.ChatLine{Sender: "Steve", Body: "!leave Alex don't wait up", Private: false},
		},
		{
			name:     "Bracket decorated public chat",
			raw:      "[Herobrine] hello there",
			expected: domain.ChatLine{Sender: "Herobrine", Body: "hello there", Private: false},
		},
		{
			name:     "Bare name with colon",
			raw:      "Alex_77: good morning",
			expected: domain.ChatLine{Sender: "Alex_77", Body: "good morning", Private: false},
		},
		{
			name:     "Bare name with guillemet glyph",
			raw:      "Steve » anyone home?",
			expected: domain.ChatLine{Sender: "Steve", Body: "anyone home?", Private: false},
		},
		{
			name:     "Arrow direct message",
			raw:      "Steve -> me: secret stuff",
			expected: domain.ChatLine{Sender: "Steve", Body: "secret stuff", Private: true},
		},
		{
			name:     "Arrow direct message with from and odd case",
			raw:      "FROM Steve -> You: secret stuff",
			expected: domain.ChatLine{Sender: "Steve", Body: "secret stuff", Private: true},
		},
		{
			name:     "Whisper shape",
			raw:      "Alex WHISPERS TO YOU: psst",
			expected: domain.ChatLine{Sender: "Alex", Body: "psst", Private: true},
		},
		{
			name:     "Bracketed PM shape",
			raw:      "[PM] Steve: ping me back",
			expected: domain.ChatLine{Sender: "Steve", Body: "ping me back", Private: true},
		},
		{
			name:     "Body whitespace is trimmed",
			raw:      "<Steve>    spaced out   ",
			expected: domain.ChatLine{Sender: "Steve", Body: "spaced out", Private: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := Parse(tt.raw)
			req.True(ok, "raw=%q", tt.raw)
			req.Equal(tt.expected, line)
		})
	}
}

func TestParse_NoiseIsDropped(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		raw  string
	}{
		{"Empty line", ""},
		{"Server prose with colon", "Server maintenance window: tonight"},
		{"Name too short", "<ab> hi"},
		{"Name too long", "<abcdefghijklmnopq> hi"},
		{"Name with punctuation", "St.eve: hi"},
		{"Death message", "Steve fell from a high place"},
		{"Decorated name with empty body", "<Steve>   "},
		{"Join notice", "* Steve joined the game"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.raw)
			req.False(ok, "raw=%q", tt.raw)
		})
	}
}

// The connector words are case-insensitive but the sender and body keep
// their original case.
func TestParse_PreservesCase(t *testing.T) {
	req := require.New(t)

	line, ok := Parse("from StEvE -> ME: Hello WORLD")
	req.True(ok)
	req.Equal("StEvE", line.Sender)
	req.Equal("Hello WORLD", line.Body)
	req.True(line.Private)
}
