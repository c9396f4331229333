package palette

import (
	"regexp"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if len(p) != 10 {
		t.Fatalf("Default() has %d colors, want 10", len(p))
	}

	hexColorRegex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i, c := range p {
		if !hexColorRegex.MatchString(c) {
			t.Errorf("Default()[%d] = %q is not a normalized hex color", i, c)
		}
	}

	// Mutating the returned copy must not touch the package default.
	p[0] = "#000000"
	if Default()[0] == "#000000" {
		t.Error("Default() returned shared backing storage")
	}
}

func TestAt(t *testing.T) {
	p := Palette{"#111111", "#222222", "#333333"}

	tests := []struct {
		name string
		i    int
		want string
	}{
		{"first", 0, "#111111"},
		{"last", 2, "#333333"},
		{"wraps", 3, "#111111"},
		{"wraps twice", 7, "#222222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.At(tt.i); got != tt.want {
				t.Errorf("At(%d) = %q, want %q", tt.i, got, tt.want)
			}
		})
	}

	if got := (Palette{}).At(0); got != "" {
		t.Errorf("empty palette At(0) = %q, want empty", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"long hex", "#1F77B4", "#1f77b4", false},
		{"short hex", "#abc", "#aabbcc", false},
		{"named white", "white", "#ffffff", false},
		{"named with spaces", "  black ", "#000000", false},
		{"none passthrough", "none", "none", false},

		{"missing hash", "1f77b4", "", true},
		{"unknown name", "chartreuse", "", true},
		{"garbage", "#zzzzzz", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	p, err := Parse([]string{"#123456", "white"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(p) != 2 || p[0] != "#123456" || p[1] != "#ffffff" {
		t.Errorf("Parse() = %v", p)
	}

	if _, err := Parse(nil); err == nil {
		t.Error("Parse(nil) should fail")
	}
	if _, err := Parse([]string{"#123456", "bogus"}); err == nil {
		t.Error("Parse with invalid entry should fail")
	}
}

func TestRGB(t *testing.T) {
	c, ok := RGB("#ff0000")
	if !ok {
		t.Fatal("RGB(#ff0000) not ok")
	}
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("RGB(#ff0000) = %v", c)
	}

	if _, ok := RGB("none"); ok {
		t.Error("RGB(none) should not be ok")
	}
}
