package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "y", want: YAMLFormat},
		{in: "yml", want: YAMLFormat},
		{in: "tony", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q): expected ErrBadFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if f.String() != "yaml" || f.Suffix() != ".yaml" {
		t.Errorf("got %s %s", f, f.Suffix())
	}
	if JSONFormat.Suffix() != ".json" || !JSONFormat.IsJSON() {
		t.Errorf("json format misreported")
	}
}
