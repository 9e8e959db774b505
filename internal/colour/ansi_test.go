package colour

import (
	"strings"
	"testing"
)

func withColourOutput(t *testing.T, enabled bool) {
	t.Helper()
	prev := DisableColourOutput
	DisableColourOutput = !enabled
	t.Cleanup(func() { DisableColourOutput = prev })
}

func TestColourPreviewEmitsEscapes(t *testing.T) {
	withColourOutput(t, true)

	out := ColourPreview(RGB{R: 255}, 4)
	if !strings.Contains(out, "\033[48;2;255;0;0m") {
		t.Errorf("preview missing background escape: %q", out)
	}
	if !strings.HasSuffix(out, ansiReset) {
		t.Errorf("preview missing reset: %q", out)
	}
}

func TestColourOutputDisabled(t *testing.T) {
	withColourOutput(t, false)

	rgb := RGB{R: 58, G: 110, B: 165}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"preview", ColourPreview(rgb, 8), ""},
		{"preview with text", ColourPreviewWithText(rgb, "label", 8), "label"},
		{"format with preview", FormatColourWithPreview(rgb, 8), "#3a6ea5"},
		{"colour string", ColourString(rgb, "text"), "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
			if strings.Contains(tt.got, "\033[") {
				t.Errorf("output contains ANSI escape: %q", tt.got)
			}
		})
	}
}

func TestFormatColourWithLabelDisabled(t *testing.T) {
	withColourOutput(t, false)

	out := FormatColourWithLabel(RGB{R: 255}, "Red", 8)
	if strings.Contains(out, "\033[") {
		t.Errorf("output contains ANSI escape: %q", out)
	}
	if !strings.Contains(out, "Red") || !strings.Contains(out, "#ff0000") {
		t.Errorf("output missing label or hex: %q", out)
	}
}

func TestFormatColourWithLabelEnabled(t *testing.T) {
	withColourOutput(t, true)

	out := FormatColourWithLabel(RGB{R: 255}, "Red", 8)
	if !strings.Contains(out, ansiBgPrefix) {
		t.Errorf("output missing preview escape: %q", out)
	}
}
