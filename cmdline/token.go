package cmdline

import (
	"strings"
	"unicode/utf8"
)

// resetMarker replaces every response-file directive in the expanded token
// stream. Values after it are not attached to the option before the directive.
const resetMarker = "--@"

type tokenKind int

const (
	tokenPositional tokenKind = iota
	tokenReset
	tokenLong
	tokenShort
)

// isFlagShaped reports whether tok starts with an option prefix.
func (p *Parser) isFlagShaped(tok string) bool {
	return strings.HasPrefix(tok, "-") || (p.slashPrefix && strings.HasPrefix(tok, "/"))
}

// isDirective reports whether tok is one of the response-file directives.
func isDirective(tok string) bool {
	switch tok {
	case "-@", "/@", "--@":
		return true
	}
	return false
}

// classify returns the kind of tok and, for options, the text after the prefix.
func (p *Parser) classify(tok string) (tokenKind, string) {
	switch {
	case tok == resetMarker:
		return tokenReset, ""
	case strings.HasPrefix(tok, "--"):
		return tokenLong, tok[2:]
	case p.slashPrefix && strings.HasPrefix(tok, "/"):
		return tokenLong, tok[1:]
	case strings.HasPrefix(tok, "-"):
		return tokenShort, tok[1:]
	default:
		return tokenPositional, tok
	}
}

// splitInline splits "key=value" or "key:value" at the first separator that
// follows a non-empty key. The value may be empty.
func splitInline(s string) (key, value string, ok bool) {
	if s == "" {
		return "", "", false
	}
	_, size := utf8.DecodeRuneInString(s)
	i := strings.IndexAny(s[size:], "=:")
	if i < 0 {
		return "", "", false
	}
	i += size
	return s[:i], s[i+1:], true
}

// hasWildcard reports whether a positional token should be globbed.
func hasWildcard(tok string) bool {
	return strings.ContainsAny(tok, "*?")
}
