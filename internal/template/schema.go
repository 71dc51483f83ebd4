package template

// PlanTemplate is the top-level JSON template structure for a generated
// learning plan. String fields may contain {field} and {difficulty}
// placeholders.
type PlanTemplate struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Version         string            `json:"version,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Durations       map[string]string `json:"durations"`
	DefaultDuration string            `json:"default_duration"`
	Objectives      []string          `json:"objectives"`
	Milestones      []MilestoneConfig `json:"milestones"`
}

type MilestoneConfig struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Tasks       []TaskConfig     `json:"tasks"`
	Resources   []ResourceConfig `json:"resources,omitempty"`
}

type TaskConfig struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ResourceConfig struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}
