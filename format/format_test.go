package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{"j", JSONFormat, nil},
		{"json", JSONFormat, nil},
		{"y", YAMLFormat, nil},
		{"yaml", YAMLFormat, nil},
		{"yml", YAMLFormat, nil},
		{"tony", 0, ErrBadFormat},
		{"", 0, ErrBadFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseFormat(%q) error = %v want %v", tt.in, err, tt.err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFormat(%q) = %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		var back Format
		if err := back.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("got %s want %s", back, f)
		}
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":       JSONFormat,
		"dir/b.YAML":   YAMLFormat,
		"c.yml":        YAMLFormat,
		"no-extension": JSONFormat,
		"-":            JSONFormat,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %s want %s", path, got, want)
		}
	}
}
