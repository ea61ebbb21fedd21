package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress renders a single-line gradient progress bar for file
// processing. It rewrites the same terminal line on every update, so only
// one Progress may print at a time.
type Progress struct {
	Total int
	done  int
}

// NewProgress creates a progress bar expecting total updates.
func NewProgress(total int) *Progress {
	return &Progress{Total: total}
}

// Update sets the current count and redraws the bar with the given label.
func (p *Progress) Update(done int, label string) {
	p.done = done
	p.draw(label)
}

// Finish completes the bar and moves to the next line.
func (p *Progress) Finish() {
	p.done = p.Total
	p.draw("")
	fmt.Println()
}

func (p *Progress) draw(label string) {
	percent := 1.0
	if p.Total > 0 {
		percent = float64(p.done) / float64(p.Total)
	}
	if percent > 1.0 {
		percent = 1.0
	}

	width := 20
	filled := int(percent * float64(width))

	// Build gradient progress bar
	var barStr string
	for i := 0; i < width; i++ {
		if i < filled {
			gradientPos := float64(i) / float64(width)
			charStyle := lipgloss.NewStyle().Foreground(interpolateColor(gradientPos))
			barStr += charStyle.Render("█")
		} else {
			emptyStyle := lipgloss.NewStyle().Foreground(grayColor)
			barStr += emptyStyle.Render("░")
		}
	}

	var status string
	if percent >= 1.0 {
		status = SuccessStyle.Render("✓")
	} else {
		status = InfoStyle.Render("»")
	}

	countText := lipgloss.NewStyle().Foreground(whiteColor).Bold(true).
		Render(fmt.Sprintf("%d/%d", p.done, p.Total))

	// Truncate label if too long
	if len(label) > 40 {
		label = label[:37] + "..."
	}

	fmt.Printf("\r\033[2K%s [%s] %s %s", status, barStr, countText, DetailStyle.Render(label))
}

// CountBar renders a static summary bar, used below report tables.
func CountBar(current, total int, width int) string {
	if total == 0 {
		return ""
	}

	percent := float64(current) / float64(total)
	if percent > 1.0 {
		percent = 1.0
	}

	filled := int(percent * float64(width))
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(primaryColor)
	emptyStyle := lipgloss.NewStyle().Foreground(grayColor)

	bar := filledStyle.Render(strings.Repeat("=", filled))
	bar += emptyStyle.Render(strings.Repeat("-", empty))

	percentText := fmt.Sprintf(" %d/%d (%.0f%%)", current, total, percent*100)
	percentStyle := lipgloss.NewStyle().Foreground(grayColor)

	return "[" + bar + "]" + percentStyle.Render(percentText)
}

// interpolateColor creates a smooth gradient from blue to cyan
func interpolateColor(t float64) lipgloss.Color {
	// Blue: #3B82F6 (59, 130, 246)
	// Cyan: #06B6D4 (6, 182, 212)
	r := lerp(59, 6, t)
	g := lerp(130, 182, t)
	b := lerp(246, 212, t)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", int(r), int(g), int(b)))
}

// lerp performs linear interpolation between two values
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
