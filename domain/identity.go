package domain

import "strings"

// CanonicalIdentity normalizes a display name for mailbox keys and
// presence lookups. Names are case-sensitive at creation but compared
// case-insensitively everywhere else.
func CanonicalIdentity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
