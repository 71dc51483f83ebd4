package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/progress"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/charmbracelet/lipgloss"
)

func statCard(label, value string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)
	return card.Render(Dim(strings.ToUpper(label)) + "\n" + StyleYellowBold.Render(value))
}

// FormatDashboard renders the user's overview: stat cards, level progress,
// the current plan and recent badges.
func FormatDashboard(s *service.DashboardSummary) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render("Welcome back, "+s.User.Name+"!") + "\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("points", fmt.Sprintf("%d", s.Points)), " ",
		statCard("level", fmt.Sprintf("%d", s.Level)), " ",
		statCard("active plans", fmt.Sprintf("%d", s.ActivePlans)), " ",
		statCard("tasks done", fmt.Sprintf("%d", s.CompletedTasks)),
	)
	b.WriteString(cards + "\n\n")

	into := s.Points % domain.PointsPerLevel
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		Dim(fmt.Sprintf("Level %d", s.Level)),
		RenderProgress(float64(into)/domain.PointsPerLevel, 20),
		Dim(fmt.Sprintf("%d to level %d", domain.PointsPerLevel-into, s.Level+1))))

	b.WriteString(Header("Current plan") + "\n")
	if s.CurrentPlan == nil {
		b.WriteString(Dim("No plan selected. Create one with `learnpath plan create`.") + "\n")
	} else {
		p := s.CurrentPlan
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(p.Title), DifficultyBadge(p.Difficulty)))
		for _, m := range p.Milestones {
			b.WriteString(fmt.Sprintf("  %s %s\n", RenderProgress(m.Progress/100, 12), StyleFg.Render(m.Title)))
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("overall"), Percent(progress.PlanProgress(p))))
	}

	b.WriteString("\n" + Header("Recent badges") + "\n")
	if len(s.RecentBadges) == 0 {
		b.WriteString(Dim("Complete tasks and quizzes to earn badges.") + "\n")
	}
	for i := len(s.RecentBadges) - 1; i >= 0; i-- {
		badge := s.RecentBadges[i]
		b.WriteString("  " + FormatBadge(badge) + " " + Dim(HumanDate(badge.EarnedAt)) + "\n")
	}

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}
