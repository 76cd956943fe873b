// Package intern gives every option name of one parse a single string
// instance. Short options and options repeated across the command line and
// response files share it.
package intern

import "strings"

// Names is the name table of one assignment pass. It is not safe for
// concurrent use and is meant to be dropped when the pass ends, so its size
// is bounded by the input that filled it.
type Names struct {
	long map[string]string
}

// New creates a table sized for about capacity distinct long names.
func New(capacity int) *Names {
	if capacity < 0 {
		capacity = 0
	}
	return &Names{long: make(map[string]string, capacity)}
}

// Intern returns the table's instance of name. A name seen for the first
// time is copied, so the table never pins the response-file line or
// argument string it was sliced from.
func (n *Names) Intern(name string) string {
	if canonical, ok := n.long[name]; ok {
		return canonical
	}
	if len(name) == 1 && name[0] >= firstPrintable && name[0] <= lastPrintable {
		return asciiStrings[name[0]-firstPrintable]
	}
	canonical := strings.Clone(name)
	n.long[canonical] = canonical
	return canonical
}

// InternRune returns the name of the short option r. Printable ASCII comes
// from a static table and never touches the map.
func (n *Names) InternRune(r rune) string {
	if r >= firstPrintable && r <= lastPrintable {
		return asciiStrings[r-firstPrintable]
	}
	return n.Intern(string(r))
}

// Len returns the number of names held in the map, excluding the static
// table.
func (n *Names) Len() int {
	return len(n.long)
}

// Reset empties the table for another pass.
func (n *Names) Reset() {
	clear(n.long)
}

const (
	firstPrintable = '!'
	lastPrintable  = '~'
)

var asciiStrings = func() [lastPrintable - firstPrintable + 1]string {
	var table [lastPrintable - firstPrintable + 1]string
	for r := rune(firstPrintable); r <= lastPrintable; r++ {
		table[r-firstPrintable] = string(r)
	}
	return table
}()
