package domain

// Clone returns a deep copy of the user. Services mutate a clone and swap it
// in only after the write commits.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Badges != nil {
		c.Badges = make([]Badge, len(u.Badges))
		copy(c.Badges, u.Badges)
	}
	return &c
}

// Clone returns a deep copy of the plan.
func (p *LearningPlan) Clone() *LearningPlan {
	if p == nil {
		return nil
	}
	c := *p
	if p.Objectives != nil {
		c.Objectives = make([]string, len(p.Objectives))
		copy(c.Objectives, p.Objectives)
	}
	if p.Milestones != nil {
		c.Milestones = make([]Milestone, len(p.Milestones))
		for i, m := range p.Milestones {
			c.Milestones[i] = m.clone()
		}
	}
	return &c
}

func (m Milestone) clone() Milestone {
	if m.Tasks != nil {
		tasks := make([]Task, len(m.Tasks))
		for i, t := range m.Tasks {
			if t.CompletedAt != nil {
				at := *t.CompletedAt
				t.CompletedAt = &at
			}
			tasks[i] = t
		}
		m.Tasks = tasks
	}
	if m.Resources != nil {
		resources := make([]Resource, len(m.Resources))
		copy(resources, m.Resources)
		m.Resources = resources
	}
	return m
}
