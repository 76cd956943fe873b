package cmdline

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

// CommandLine is the result of a parse. It is never modified after Parse
// returns and accessors hand out copies, so it may be shared freely.
type CommandLine struct {
	me          string
	params      map[string][]string
	diagnostics []error
}

// Me returns the program invocation string (argv[0]) verbatim.
func (c *CommandLine) Me() string {
	return c.me
}

// All returns a copy of the full option mapping. Values seen before any
// option are stored under the empty name.
func (c *CommandLine) All() map[string][]string {
	return lo.MapValues(c.params, func(values []string, _ string) []string {
		return slices.Clone(values)
	})
}

// Find reports whether the option name was seen.
func (c *CommandLine) Find(name string) bool {
	_, ok := c.params[name]
	return ok
}

// Get returns the values of the option name. The slice is empty, not nil,
// for an option that was given without values.
func (c *CommandLine) Get(name string) ([]string, bool) {
	values, ok := c.params[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// Names returns every option name in sorted order.
func (c *CommandLine) Names() []string {
	names := lo.Keys(c.params)
	slices.Sort(names)
	return names
}

// Diagnostics returns the problems recovered from while parsing, in the
// order they occurred. Each is a *ParseError.
func (c *CommandLine) Diagnostics() []error {
	return slices.Clone(c.diagnostics)
}

// Print dumps the invocation and every option to stdout.
func (c *CommandLine) Print() {
	_ = c.fprint(color.Output, color.New(color.FgCyan).SprintFunc())
}

// Fprint writes the dump printed by Print to w without color.
func (c *CommandLine) Fprint(w io.Writer) error {
	return c.fprint(w, fmt.Sprint)
}

// String returns the dump printed by Print without color.
func (c *CommandLine) String() string {
	var b strings.Builder
	_ = c.Fprint(&b)
	return b.String()
}

func (c *CommandLine) fprint(w io.Writer, name func(a ...any) string) error {
	if _, err := fmt.Fprintf(w, "me = %s\n", c.me); err != nil {
		return err
	}
	for _, opt := range c.Names() {
		quoted := lo.Map(c.params[opt], func(v string, _ int) string {
			return strconv.Quote(v)
		})
		if _, err := fmt.Fprintf(w, "%s: [%s]\n", name(strconv.Quote(opt)), strings.Join(quoted, ", ")); err != nil {
			return err
		}
	}
	return nil
}
