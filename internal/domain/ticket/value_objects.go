package ticket

import "strings"

// Code is the canonical validation code: the string that identifies exactly
// one attendee ticket, regardless of how a scanner transported it. Codes are
// unique system-wide and never reused after a ticket reaches a terminal
// status.
type Code struct {
	value string
}

const MaxCodeLength = 128

func NewCode(raw string) (Code, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Code{}, ErrEmptyCode
	}
	if len(trimmed) > MaxCodeLength {
		return Code{}, ErrCodeTooLong
	}
	return Code{value: trimmed}, nil
}

func (c Code) String() string {
	return c.value
}
