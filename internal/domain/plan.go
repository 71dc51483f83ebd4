package domain

import "time"

type LearningPlan struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Field             string      `json:"field"`
	Difficulty        Difficulty  `json:"difficulty"`
	EstimatedDuration string      `json:"estimatedDuration"`
	Objectives        []string    `json:"objectives"`
	Milestones        []Milestone `json:"milestones"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// Milestone returns the milestone with the given ID, or nil.
func (p *LearningPlan) Milestone(id string) *Milestone {
	for i := range p.Milestones {
		if p.Milestones[i].ID == id {
			return &p.Milestones[i]
		}
	}
	return nil
}

// TaskCounts returns the number of completed tasks and the total task count
// across all milestones.
func (p *LearningPlan) TaskCounts() (done, total int) {
	for _, m := range p.Milestones {
		d, t := m.TaskCounts()
		done += d
		total += t
	}
	return done, total
}

type Milestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tasks       []Task     `json:"tasks"`
	Completed   bool       `json:"completed"`
	Progress    float64    `json:"progress"`
	Resources   []Resource `json:"resources"`
}

// Task returns the task with the given ID, or nil.
func (m *Milestone) Task(id string) *Task {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			return &m.Tasks[i]
		}
	}
	return nil
}

// TaskCounts returns the number of completed tasks and the total.
func (m *Milestone) TaskCounts() (done, total int) {
	for _, t := range m.Tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(m.Tasks)
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Sentiment   Sentiment  `json:"sentiment,omitempty"`
}

type Resource struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
	Notes string       `json:"notes,omitempty"`
}
