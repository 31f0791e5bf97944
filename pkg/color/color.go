package color

import (
	"github.com/muesli/termenv"
)

// ANSI palette indexes
const (
	Red       = "1"
	Green     = "2"
	Yellow    = "3"
	Blue      = "4"
	Cyan      = "6"
	Gray      = "8"
	BrightRed = "9"
)

var (
	profile      = termenv.EnvColorProfile()
	colorEnabled = true
)

func init() {
	// EnvColorProfile already honours NO_COLOR and non-terminal output
	if profile == termenv.Ascii {
		colorEnabled = false
	}
}

func EnableColor(enable bool) {
	colorEnabled = enable
	if enable && profile == termenv.Ascii {
		profile = termenv.ANSI
	}
}

func IsColorEnabled() bool {
	return colorEnabled
}

// Colorize paints text with a palette color when color is enabled
func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(profile.Color(color)).String()
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	if !colorEnabled {
		return text
	}
	return termenv.String(text).Bold().String()
}
