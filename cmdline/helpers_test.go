package cmdline

import (
	"testing"

	"github.com/spf13/afero"

	cmdlineio "github.com/dzonerzy/go-cmdline/io"
)

// newTestParser returns a parser on fs with diagnostics silenced and
// Unix option prefixes, so tests behave the same on every platform.
func newTestParser(fs afero.Fs) *Parser {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return NewParser().WithFs(fs).WithLogger(cmdlineio.Discard()).SlashPrefix(false)
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func argv(args ...string) []string {
	return append([]string{"prog"}, args...)
}
