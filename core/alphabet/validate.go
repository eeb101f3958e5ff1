package alphabet

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"nmsa-core/engine"
)

// Normalize removes whitespace and quotes and uppercases symbols.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate returns the normalized sequence, or an error wrapping
// engine.ErrInvalidInput if it is empty, contains the gap character, or
// holds anything but A-Z and '*'.
func Validate(raw string, gap byte) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", errors.Wrap(engine.ErrInvalidInput, "empty sequence")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == gap:
			return "", errors.Wrapf(engine.ErrInvalidInput, "gap character %q at %d", c, i+1)
		case c >= 'A' && c <= 'Z', c == '*':
		default:
			return "", errors.Wrapf(engine.ErrInvalidInput, "invalid symbol %q at %d; allowed: A-Z and *", c, i+1)
		}
	}
	return s, nil
}
