package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// FormatBadge renders one badge as "🏆 Level 2  Reached level 2 (Common)".
func FormatBadge(b domain.Badge) string {
	style := RarityStyle(b.Rarity)
	return fmt.Sprintf("%s %s  %s %s",
		b.Icon,
		style.Bold(true).Render(b.Name),
		StyleFg.Render(b.Description),
		Dim("("+b.Rarity.DisplayName()+")"))
}

// FormatNewBadges announces badges just earned.
func FormatNewBadges(badges []domain.Badge) string {
	var b strings.Builder
	for _, badge := range badges {
		b.WriteString(StyleYellowBold.Render("New badge! ") + FormatBadge(badge) + "\n")
	}
	return b.String()
}
