package session

import (
	"fmt"
	"unicode/utf8"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

// Range is a span of characters (runes), not bytes.
type Range struct {
	Start  int
	Length int
}

// RangeEdit replaces Range with Text.
type RangeEdit struct {
	Range Range
	Text  string
}

// ApplyReplacement replaces r in text with repl and returns the result.
func ApplyReplacement(text string, r Range, repl string) (string, error) {
	n := utf8.RuneCountInString(text)
	if r.Start < 0 || r.Length < 0 || r.Start > n || r.Length > n-r.Start {
		return text, fmt.Errorf("%w: start=%d length=%d text has %d characters", errUtils.ErrInvalidRange, r.Start, r.Length, n)
	}

	runes := []rune(text)
	out := make([]rune, 0, n-r.Length+utf8.RuneCountInString(repl))
	out = append(out, runes[:r.Start]...)
	out = append(out, []rune(repl)...)
	out = append(out, runes[r.Start+r.Length:]...)
	return string(out), nil
}
