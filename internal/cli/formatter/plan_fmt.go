package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/progress"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/alexanderramin/learnpath/internal/template"
)

// FormatPlanList renders the plans as a table; the current plan is starred.
func FormatPlanList(plans []*domain.LearningPlan, currentID string) string {
	headers := []string{"", "ID", "FIELD", "DIFFICULTY", "PROGRESS", "DURATION"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		marker := " "
		if p.ID == currentID {
			marker = StyleYellowBold.Render("*")
		}
		done, total := p.TaskCounts()
		rows = append(rows, []string{
			marker,
			TruncID(p.ID),
			Bold(p.Field),
			DifficultyBadge(p.Difficulty),
			RenderCompactBar(progress.PlanProgress(p)/100, 10) + Dim(fmt.Sprintf(" %d/%d", done, total)),
			StyleFg.Render(p.EstimatedDuration),
		})
	}
	return RenderBox("Learning plans", RenderTable(headers, rows))
}

// FormatPlan renders one plan: summary, objectives and the milestone tree.
func FormatPlan(p *domain.LearningPlan) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(Dim(p.Description) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID        "), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DIFFICULTY"), DifficultyBadge(p.Difficulty)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DURATION  "), StyleFg.Render(p.EstimatedDuration)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("CREATED   "), StyleFg.Render(HumanDate(p.CreatedAt))))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("PROGRESS  "), RenderProgress(progress.PlanProgress(p)/100, 20)))

	if len(p.Objectives) > 0 {
		b.WriteString(Header("Objectives") + "\n")
		for _, o := range p.Objectives {
			b.WriteString("  • " + StyleFg.Render(o) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Milestones") + "\n")
	b.WriteString(RenderTree(planTree(p)))

	if res := formatResources(p); res != "" {
		b.WriteString("\n" + Header("Resources") + "\n" + res)
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func planTree(p *domain.LearningPlan) []TreeItem {
	var items []TreeItem
	for _, m := range p.Milestones {
		items = append(items, TreeItem{
			ID:     m.ID,
			Title:  m.Title,
			Done:   m.Completed,
			Detail: Percent(m.Progress),
		})
		for i, t := range m.Tasks {
			detail := ""
			if t.Notes != "" {
				detail = "note"
				if icon := SentimentIcon(t.Sentiment); icon != "" {
					detail += " " + icon
				}
			}
			items = append(items, TreeItem{
				ID:     t.ID,
				Title:  t.Title,
				Level:  1,
				IsLast: i == len(m.Tasks)-1,
				Done:   t.Completed,
				Detail: detail,
			})
		}
	}
	return items
}

func formatResources(p *domain.LearningPlan) string {
	var b strings.Builder
	for _, m := range p.Milestones {
		for _, r := range m.Resources {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleBlue.Render("["+string(r.Type)+"]"), StyleFg.Render(r.Title), Dim(r.URL)))
		}
	}
	return b.String()
}

// FormatToggle reports a task toggle: the task, its milestone and any change
// to the user's points and badges.
func FormatToggle(out *service.ToggleOutcome) string {
	var b strings.Builder

	verb := StyleYellow.Render("↺ Reopened")
	if out.Task.Completed {
		verb = StyleGreen.Render("✔ Completed")
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n", verb, Dim(out.Task.ID), Bold(out.Task.Title)))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleFg.Render(out.Milestone.Title), RenderProgress(out.Milestone.Progress/100, 12)))

	if out.User != nil {
		b.WriteString(fmt.Sprintf("%s %d  %s %d\n", Dim("points"), out.User.Points, Dim("level"), out.User.Level))
	}
	if len(out.NewBadges) > 0 {
		b.WriteString(FormatNewBadges(out.NewBadges))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRoadmaps lists the prebuilt roadmaps.
func FormatRoadmaps(roadmaps []template.Roadmap) string {
	headers := []string{"ID", "ROADMAP", "DURATION", "SKILLS"}
	rows := make([][]string, 0, len(roadmaps))
	for _, r := range roadmaps {
		rows = append(rows, []string{
			Dim(r.ID),
			Bold(r.Title),
			StyleFg.Render(r.Duration),
			StyleBlue.Render(strings.Join(r.Skills, ", ")),
		})
	}
	return RenderBox("Popular roadmaps", RenderTable(headers, rows))
}
