package template

import "strings"

// Roadmap is a prebuilt learning path offered as a starting point. Picking
// one creates a beginner plan whose field is the roadmap title.
type Roadmap struct {
	ID          string
	Title       string
	Description string
	Duration    string
	Skills      []string
}

var roadmaps = []Roadmap{
	{
		ID:          "web-dev",
		Title:       "Web Development",
		Description: "Master modern web development with React, Node.js, and more",
		Duration:    "6-12 months",
		Skills:      []string{"HTML/CSS", "JavaScript", "React", "Node.js"},
	},
	{
		ID:          "ui-ux",
		Title:       "UI/UX Design",
		Description: "Learn user interface and experience design principles",
		Duration:    "4-8 months",
		Skills:      []string{"Figma", "Design Theory", "Prototyping", "User Research"},
	},
	{
		ID:          "data-science",
		Title:       "Data Science",
		Description: "Analyze data and build machine learning models",
		Duration:    "8-12 months",
		Skills:      []string{"Python", "Statistics", "SQL", "Machine Learning"},
	},
	{
		ID:          "ai-ml",
		Title:       "Artificial Intelligence",
		Description: "Dive into AI, machine learning, and neural networks",
		Duration:    "10-15 months",
		Skills:      []string{"Python", "TensorFlow", "Deep Learning", "NLP"},
	},
	{
		ID:          "mobile-dev",
		Title:       "Mobile Development",
		Description: "Build native and cross-platform mobile applications",
		Duration:    "6-10 months",
		Skills:      []string{"React Native", "Flutter", "iOS", "Android"},
	},
}

// Roadmaps returns the prebuilt roadmaps in display order.
func Roadmaps() []Roadmap {
	out := make([]Roadmap, len(roadmaps))
	copy(out, roadmaps)
	return out
}

// FindRoadmap looks a roadmap up by id or title, ignoring case.
func FindRoadmap(name string) (Roadmap, bool) {
	name = strings.TrimSpace(name)
	for _, r := range roadmaps {
		if strings.EqualFold(r.ID, name) || strings.EqualFold(r.Title, name) {
			return r, true
		}
	}
	return Roadmap{}, false
}
