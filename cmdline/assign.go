package cmdline

import (
	"slices"

	"github.com/dzonerzy/go-cmdline/internal/intern"
	cmdlineio "github.com/dzonerzy/go-cmdline/io"
)

// activeSet is the ordered set of options that receive the next bare value.
type activeSet []string

// only replaces the set with name.
func (a activeSet) only(name string) activeSet {
	return append(a[:0], name)
}

// add appends name unless it is already active.
func (a activeSet) add(name string) activeSet {
	if slices.Contains(a, name) {
		return a
	}
	return append(a, name)
}

// assigner is the state of a single Assign pass. Option names are interned
// per pass so a long-lived Parser keeps nothing from earlier input.
type assigner struct {
	p      *Parser
	diag   *diagnostics
	names  *intern.Names
	params map[string][]string
	active activeSet
	values []string // scratch for the values of one positional token
}

func (p *Parser) newAssigner(diag *diagnostics) *assigner {
	return &assigner{
		p:      p,
		diag:   diag,
		names:  intern.New(8),
		params: make(map[string][]string),
		active: make(activeSet, 0, 4).only(""),
	}
}

func (p *Parser) assign(tokens []string, diag *diagnostics) map[string][]string {
	a := p.newAssigner(diag)
	a.run(tokens)
	return a.params
}

func (a *assigner) run(tokens []string) {
	for _, tok := range tokens {
		a.token(tok)
	}
}

func (a *assigner) token(tok string) {
	kind, rest := a.p.classify(tok)
	switch kind {
	case tokenReset:
		a.active = a.active.only("")

	case tokenLong:
		if key, value, ok := splitInline(rest); ok {
			// Inline values never leave the option active
			key = a.names.Intern(key)
			a.params[key] = append(a.params[key], value)
			a.active = a.active.only("")
			return
		}
		name := a.names.Intern(rest)
		a.declare(name)
		a.active = a.active.only(name)

	case tokenShort:
		a.active = a.active[:0]
		for _, r := range rest {
			name := a.names.InternRune(r)
			a.declare(name)
			a.active = a.active.add(name)
		}

	default:
		a.values = a.expandValue(a.values[:0], tok)
		for _, opt := range a.active {
			a.params[opt] = append(a.params[opt], a.values...)
		}
	}
}

// declare makes sure name has an entry, empty if it is new.
func (a *assigner) declare(name string) {
	if _, ok := a.params[name]; !ok {
		a.params[name] = []string{}
	}
}

// expandValue appends the values tok stands for: the wildcard matches when
// there are any, otherwise tok itself.
func (a *assigner) expandValue(dst []string, tok string) []string {
	if !a.p.wildcards || !hasWildcard(tok) {
		return append(dst, tok)
	}

	entries, err := glob(a.p.fs, tok)
	if err != nil {
		a.diag.report(cmdlineio.LevelDebug, &ParseError{
			Type:    ErrorTypeWildcard,
			Message: "invalid wildcard pattern " + tok,
			Path:    tok,
			Err:     err,
		})
		return append(dst, tok)
	}
	if len(entries) == 0 {
		return append(dst, tok)
	}

	for _, e := range entries {
		if e.err != nil {
			a.diag.report(cmdlineio.LevelWarning, &ParseError{
				Type:    ErrorTypeWildcard,
				Message: "cannot list " + e.path + " while expanding " + tok,
				Path:    tok,
				Err:     e.err,
			})
			dst = append(dst, tok)
			continue
		}
		dst = append(dst, e.path)
	}
	return dst
}
