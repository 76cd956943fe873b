package cmdline

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	cmdlineio "github.com/dzonerzy/go-cmdline/io"
)

// expand appends the expanded form of args to dst.
//
// A directive switches to file mode, in which every following non-option
// token names a response file to inline. Any other option token leaves
// file mode.
func (p *Parser) expand(dst, args []string, diag *diagnostics) []string {
	fileMode := false
	for _, arg := range args {
		switch {
		case p.isFlagShaped(arg) && isDirective(arg):
			fileMode = true
			dst = append(dst, resetMarker)
		case p.isFlagShaped(arg):
			fileMode = false
			dst = append(dst, arg)
		case fileMode:
			dst = p.appendResponseFile(dst, arg, diag)
		default:
			dst = append(dst, arg)
		}
	}
	return dst
}

// appendResponseFile appends the words of the response file at path.
// Directives inside the file only suppress the words that follow them; they
// never open another file.
func (p *Parser) appendResponseFile(dst []string, path string, diag *diagnostics) []string {
	if path == "" {
		return dst
	}

	f, err := p.fs.Open(path)
	if err != nil {
		diag.report(cmdlineio.LevelError, &ParseError{
			Type:    ErrorTypeResponseFile,
			Message: "cannot open response file " + path,
			Path:    path,
			Err:     err,
		})
		return dst
	}
	defer f.Close()

	// A byte-order mark selects UTF-8 or UTF-16 decoding; unmarked files are
	// read as-is and validated line by line.
	r := bufio.NewReader(transform.NewReader(f, unicode.BOMOverride(encoding.Nop.NewDecoder())))

	skipping := false
	for lineNo := 1; ; lineNo++ {
		line, err := r.ReadString('\n')
		if line != "" {
			dst, skipping = p.appendLine(dst, line, skipping, path, lineNo, diag)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			diag.report(cmdlineio.LevelError, &ParseError{
				Type:    ErrorTypeResponseFile,
				Message: "error reading response file " + path,
				Path:    path,
				Line:    lineNo,
				Err:     err,
			})
			break
		}
	}
	return dst
}

var errInvalidUTF8 = errors.New("invalid UTF-8")

func (p *Parser) appendLine(dst []string, line string, skipping bool, path string, lineNo int, diag *diagnostics) ([]string, bool) {
	if !utf8.ValidString(line) {
		diag.report(cmdlineio.LevelWarning, &ParseError{
			Type:    ErrorTypeMalformedLine,
			Message: "skipping malformed line in response file " + path,
			Path:    path,
			Line:    lineNo,
			Err:     errInvalidUTF8,
		})
		return dst, skipping
	}

	words, err := p.splitLine(line)
	if err != nil {
		diag.report(cmdlineio.LevelWarning, &ParseError{
			Type:    ErrorTypeMalformedLine,
			Message: "skipping malformed line in response file " + path,
			Path:    path,
			Line:    lineNo,
			Err:     err,
		})
		return dst, skipping
	}

	for _, word := range words {
		switch {
		case p.isFlagShaped(word) && isDirective(word):
			skipping = true
		case p.isFlagShaped(word):
			skipping = false
			dst = append(dst, word)
		case !skipping && word != "":
			dst = append(dst, word)
		}
	}
	return dst, skipping
}

func (p *Parser) splitLine(line string) ([]string, error) {
	if p.shellQuote {
		return shellquote.Split(strings.TrimRight(line, "\r\n"))
	}
	return strings.Fields(line), nil
}
