package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampFraction(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

func progressStyleFor(pct float64) func(...string) string {
	switch {
	case pct >= 1:
		return StyleGreen.Render
	case pct >= 0.5:
		return StyleYellow.Render
	case pct > 0:
		return StyleBlue.Render
	default:
		return StyleDim.Render
	}
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░]  45% for a fraction
// between 0 and 1. Complete bars are green.
func RenderProgress(pct float64, width int) string {
	pct = clampFraction(pct)
	render := progressStyleFor(pct)
	return fmt.Sprintf("[%s] %3.0f%%", render(bar(pct, width)), pct*100)
}

// RenderCompactBar renders just the blocks, without brackets or percentage.
func RenderCompactBar(pct float64, width int) string {
	pct = clampFraction(pct)
	return progressStyleFor(pct)(bar(pct, width))
}
