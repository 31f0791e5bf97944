package color_test

import (
	"strings"
	"testing"

	"xvm/pkg/color"
)

func TestColorDisabled(t *testing.T) {
	color.EnableColor(false)

	for _, text := range []string{color.RedText("x"), color.BoldText("x"), color.GrayText("x")} {
		if text != "x" {
			t.Errorf("expected plain text, got %q", text)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	color.EnableColor(true)
	defer color.EnableColor(false)

	red := color.RedText("err")
	if !strings.Contains(red, "err") || !strings.HasPrefix(red, "\x1b[") {
		t.Errorf("expected an escape sequence around err, got %q", red)
	}
	if color.GreenText("ok") == color.RedText("ok") {
		t.Errorf("expected different colors")
	}
}
