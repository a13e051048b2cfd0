package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var undashedHexRegex = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NormalizeUUID strips every dash and lowercases the result.
func NormalizeUUID(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", ""))
}

// IsUUID reports whether s is 32 hex characters once dashes are removed.
// Dashes may appear anywhere; their position is not checked.
func IsUUID(s string) bool {
	return undashedHexRegex.MatchString(NormalizeUUID(s))
}

// PlayerIdentifier is the user's input: a display name or a UUID.
type PlayerIdentifier struct {
	Raw  string
	UUID uuid.UUID
	// IsUUID is false for display names, which need resolving.
	IsUUID bool
}

// ParsePlayerIdentifier classifies raw input. Surrounding whitespace is ignored.
func ParsePlayerIdentifier(raw string) (PlayerIdentifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlayerIdentifier{}, ErrInvalidInput("username/UUID cannot be empty")
	}
	if !IsUUID(raw) {
		return PlayerIdentifier{Raw: raw}, nil
	}
	id, err := uuid.Parse(NormalizeUUID(raw))
	if err != nil {
		return PlayerIdentifier{}, ErrInvalidInput("invalid UUID: " + raw)
	}
	return PlayerIdentifier{Raw: raw, UUID: id, IsUUID: true}, nil
}

// Undashed returns the identifier's UUID as 32 lowercase hex characters.
func (p PlayerIdentifier) Undashed() string {
	return UndashedUUID(p.UUID)
}

// UndashedUUID formats id the way API path and query parameters expect it.
func UndashedUUID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
