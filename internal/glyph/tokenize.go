package glyph

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Tokenize splits msg into display tokens using the standard table.
func Tokenize(msg string) []string {
	return standard.Tokenize(msg)
}

// Tokenize splits msg into display tokens. A "/" that starts a known escape
// name yields the whole name as one token (longest name wins); any other
// "/" is an ordinary character. Everything else is split into grapheme
// clusters, so a base letter and its combining marks stay in one cell.
func (t *Table) Tokenize(msg string) []string {
	tokens := make([]string, 0, len(msg))
	rest := msg
	state := -1
	for len(rest) > 0 {
		if strings.HasPrefix(rest, EscapePrefix) {
			if name := t.matchEscape(rest); name != "" {
				tokens = append(tokens, name)
				rest = rest[len(name):]
				state = -1
				continue
			}
		}
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		tokens = append(tokens, cluster)
	}
	return tokens
}

func (t *Table) matchEscape(s string) string {
	for _, name := range t.escapes {
		if strings.HasPrefix(s, name) {
			return name
		}
	}
	return ""
}
