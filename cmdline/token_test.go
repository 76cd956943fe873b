package cmdline

import "testing"

func TestSplitInline(t *testing.T) {
	tests := []struct {
		in         string
		key, value string
		ok         bool
	}{
		{"k=v", "k", "v", true},
		{"k:v", "k", "v", true},
		{"k=", "k", "", true},
		{"key=a=b", "key", "a=b", true},
		{"key:a=b", "key", "a=b", true},
		{"=x", "", "", false},
		{":x", "", "", false},
		{"==", "=", "", true},
		{"é=1", "é", "1", true},
		{"name", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		key, value, ok := splitInline(tt.in)
		if key != tt.key || value != tt.value || ok != tt.ok {
			t.Errorf("splitInline(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, key, value, ok, tt.key, tt.value, tt.ok)
		}
	}
}

func TestClassify(t *testing.T) {
	unix := &Parser{}
	windows := &Parser{slashPrefix: true}

	tests := []struct {
		p    *Parser
		tok  string
		kind tokenKind
		rest string
	}{
		{unix, "--@", tokenReset, ""},
		{unix, "--name", tokenLong, "name"},
		{unix, "--", tokenLong, ""},
		{unix, "-abc", tokenShort, "abc"},
		{unix, "-", tokenShort, ""},
		{unix, "-@", tokenShort, "@"},
		{unix, "/name", tokenPositional, "/name"},
		{windows, "/name", tokenLong, "name"},
		{windows, "/@", tokenLong, "@"},
		{unix, "value", tokenPositional, "value"},
	}

	for _, tt := range tests {
		kind, rest := tt.p.classify(tt.tok)
		if kind != tt.kind || rest != tt.rest {
			t.Errorf("classify(%q, slash=%v) = (%v, %q), want (%v, %q)",
				tt.tok, tt.p.slashPrefix, kind, rest, tt.kind, tt.rest)
		}
	}
}

func TestIsFlagShaped(t *testing.T) {
	unix := &Parser{}
	windows := &Parser{slashPrefix: true}

	if !unix.isFlagShaped("-x") || unix.isFlagShaped("/x") || unix.isFlagShaped("x") {
		t.Error("unexpected flag detection without slash prefixes")
	}
	if !windows.isFlagShaped("/x") || !windows.isFlagShaped("--x") {
		t.Error("unexpected flag detection with slash prefixes")
	}
	for _, d := range []string{"-@", "/@", "--@"} {
		if !isDirective(d) {
			t.Errorf("%q should be a directive", d)
		}
	}
	if isDirective("-@x") {
		t.Error("-@x should not be a directive")
	}
}
