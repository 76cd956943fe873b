// Package cmdline parses raw command-line tokens into a mapping from option
// name to values without requiring options to be declared up front.
//
// Parsing runs in two stages. Expand inlines response files (-@ file) and
// Assign walks the resulting tokens, attaching every bare value to the
// option(s) seen most recently:
//
//	prog foo --out a.txt -xy 1 --level=3
//
// yields "" -> [foo], out -> [a.txt], x -> [1], y -> [1], level -> [3].
package cmdline

import (
	"os"

	"github.com/spf13/afero"

	"github.com/dzonerzy/go-cmdline/internal/pool"
	cmdlineio "github.com/dzonerzy/go-cmdline/io"
)

// Parser holds parsing configuration. It keeps no per-parse state, so one
// Parser may be used from several goroutines once configured.
type Parser struct {
	fs          afero.Fs
	logger      *cmdlineio.Logger
	slashPrefix bool
	shellQuote  bool
	wildcards   bool
}

// NewParser creates a parser reading from the OS file system and logging
// diagnostics to stderr. '/' is an option prefix on Windows only.
func NewParser() *Parser {
	return &Parser{
		fs:          afero.NewOsFs(),
		logger:      cmdlineio.NewLogger(os.Stderr),
		slashPrefix: defaultSlashPrefix,
		wildcards:   true,
	}
}

// New parses os.Args with a default parser.
func New() *CommandLine {
	return NewParser().Parse(os.Args)
}

// WithFs sets the file system used for response files and wildcards.
func (p *Parser) WithFs(fs afero.Fs) *Parser {
	p.fs = fs
	return p
}

// WithLogger sets the diagnostic logger. Nil silences diagnostics.
func (p *Parser) WithLogger(logger *cmdlineio.Logger) *Parser {
	if logger == nil {
		logger = cmdlineio.Discard()
	}
	p.logger = logger
	return p
}

// SlashPrefix controls whether '/' introduces a long option.
func (p *Parser) SlashPrefix(enabled bool) *Parser {
	p.slashPrefix = enabled
	return p
}

// ShellQuoting makes response-file lines split with shell quoting rules
// instead of plain whitespace, so "my file.txt" stays one word.
func (p *Parser) ShellQuoting(enabled bool) *Parser {
	p.shellQuote = enabled
	return p
}

// Wildcards controls whether positional values containing * or ? are
// expanded against the file system.
func (p *Parser) Wildcards(enabled bool) *Parser {
	p.wildcards = enabled
	return p
}

// Parse parses argv, whose first element is the program path. It never
// fails: problems are logged and available from Diagnostics.
func (p *Parser) Parse(argv []string) *CommandLine {
	cl := &CommandLine{}
	if len(argv) == 0 {
		cl.params = make(map[string][]string)
		return cl
	}
	cl.me = argv[0]

	diag := p.newDiagnostics()
	tokens := pool.GetTokens()
	defer pool.PutTokens(tokens)

	*tokens = p.expand(*tokens, argv[1:], diag)
	cl.params = p.assign(*tokens, diag)
	cl.diagnostics = diag.errs
	return cl
}

// Expand resolves response-file directives in args (program path excluded).
func (p *Parser) Expand(args []string) []string {
	return p.expand(make([]string, 0, len(args)), args, p.newDiagnostics())
}

// Assign maps already expanded tokens to options.
func (p *Parser) Assign(tokens []string) map[string][]string {
	return p.assign(tokens, p.newDiagnostics())
}

// diagnostics collects recoverable errors for one parse and logs them.
type diagnostics struct {
	logger *cmdlineio.Logger
	errs   []error
}

func (p *Parser) newDiagnostics() *diagnostics {
	return &diagnostics{logger: p.logger}
}

func (d *diagnostics) report(level cmdlineio.LogLevel, err *ParseError) {
	d.errs = append(d.errs, err)
	d.logger.Log(level, "%s", err.Error())
}
