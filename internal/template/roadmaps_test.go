package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmaps(t *testing.T) {
	all := Roadmaps()
	require.Len(t, all, 5)
	assert.Equal(t, "Web Development", all[0].Title)
	assert.Equal(t, "Mobile Development", all[4].Title)

	all[0].Title = "changed"
	assert.Equal(t, "Web Development", Roadmaps()[0].Title, "returned slice is a copy")
}

func TestFindRoadmap(t *testing.T) {
	r, ok := FindRoadmap("data-science")
	require.True(t, ok)
	assert.Equal(t, "Data Science", r.Title)

	r, ok = FindRoadmap("  ui/ux design ")
	require.True(t, ok)
	assert.Equal(t, "ui-ux", r.ID)

	_, ok = FindRoadmap("Cooking")
	assert.False(t, ok)
}
