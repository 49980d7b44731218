package tags

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Delimiter identifies one of the supported input delimiter patterns.
type Delimiter int

const (
	// DelimiterComma splits candidates on ",".
	DelimiterComma Delimiter = iota
	// DelimiterSemicolon splits candidates on ";".
	DelimiterSemicolon
	// DelimiterWhitespace splits candidates on any whitespace run.
	DelimiterWhitespace
)

// String returns the configuration name of the delimiter.
func (d Delimiter) String() string {
	switch d {
	case DelimiterComma:
		return "comma"
	case DelimiterSemicolon:
		return "semicolon"
	case DelimiterWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

func (d Delimiter) pattern() string {
	switch d {
	case DelimiterSemicolon:
		return ";"
	case DelimiterWhitespace:
		return `\s+`
	default:
		return ","
	}
}

// ParseDelimiter maps a configuration name back to a Delimiter.
func ParseDelimiter(name string) (Delimiter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "comma":
		return DelimiterComma, nil
	case "semicolon":
		return DelimiterSemicolon, nil
	case "whitespace", "space":
		return DelimiterWhitespace, nil
	default:
		return DelimiterComma, fmt.Errorf("unknown delimiter %q", name)
	}
}

// Splitter turns raw user text into an ordered batch of add candidates.
// It is pure: it has no dependency on focus or collection state.
type Splitter struct {
	pattern *regexp.Regexp
	numeric bool
}

// NewSplitter builds a splitter over the given delimiter set. With no
// delimiters, comma is used.
func NewSplitter(delims ...Delimiter) Splitter {
	if len(delims) == 0 {
		delims = []Delimiter{DelimiterComma}
	}
	parts := make([]string, len(delims))
	for i, d := range delims {
		parts[i] = d.pattern()
	}
	return Splitter{
		pattern: regexp.MustCompile(strings.Join(parts, "|")),
	}
}

// WithNumericParsing enables coercion of numeric-looking pieces to float64.
// Off by default so round-trips never change a value's type unasked.
func (s Splitter) WithNumericParsing(on bool) Splitter {
	s.numeric = on
	return s
}

// Split trims the raw text and splits it on the delimiter alternation.
// Pieces are trimmed and empty pieces dropped. Text containing no delimiter
// yields a single candidate; empty text yields none.
func (s Splitter) Split(raw string) []any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var pieces []string
	if s.pattern.MatchString(trimmed) {
		for _, piece := range s.pattern.Split(trimmed, -1) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				pieces = append(pieces, piece)
			}
		}
	} else {
		pieces = []string{trimmed}
	}

	out := make([]any, 0, len(pieces))
	for _, piece := range pieces {
		out = append(out, s.coerce(piece))
	}
	return out
}

func (s Splitter) coerce(piece string) any {
	if !s.numeric {
		return piece
	}
	if n, err := strconv.ParseFloat(piece, 64); err == nil {
		return n
	}
	return piece
}
