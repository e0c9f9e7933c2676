// Utils for text-based UIs
package tui

import (
	"time"
)

type BarTheme struct {
	Filled rune
	Vacant rune
}

func BarDefaultTheme() BarTheme {
	return BarTheme{'█', '░'}
}

func BarCirclesTheme() BarTheme {
	return BarTheme{'⬤', '○'}
}

// Bar draws a bar filled to ratio ([0, 1], clamped) of its width
func Bar(ratio float64, width int, theme BarTheme) string {
	filled := int(clamp(ratio) * float64(width))

	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = theme.Filled
		} else {
			bar[i] = theme.Vacant
		}
	}

	return string(bar)
}

// ElapsedRatio tells how far now is on the way from "from" to "to" ([0, 1])
func ElapsedRatio(from time.Time, to time.Time, now time.Time) float64 {
	total := to.Sub(from)
	if total <= 0 {
		return 1
	}

	return clamp(float64(now.Sub(from)) / float64(total))
}

func clamp(ratio float64) float64 {
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}
