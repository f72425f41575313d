package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journey-backend/models"
)

func testRoadmap() models.CareerRoadmap {
	return models.CareerRoadmap{
		ID:          "rm-1",
		UserID:      "user-1",
		CareerGoal:  "veterinarian",
		Grade:       10,
		Milestones:  []models.Milestone{},
		Resources:   []models.Resource{},
		LastUpdated: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddMilestoneAppendsAndTouches(t *testing.T) {
	r := testRoadmap()
	before := r.LastUpdated

	AddMilestone(&r, models.Milestone{ID: "m1", Title: "one", Category: models.MilestoneAcademic})
	first := r.LastUpdated
	AddMilestone(&r, models.Milestone{ID: "m2", Title: "two", Category: models.MilestoneSkill})

	require.Len(t, r.Milestones, 2)
	assert.Equal(t, "m1", r.Milestones[0].ID)
	assert.Equal(t, "m2", r.Milestones[1].ID)
	assert.True(t, first.After(before))
	assert.False(t, r.LastUpdated.Before(first))
}

func TestAddMilestoneDoesNotDeduplicate(t *testing.T) {
	r := testRoadmap()
	m := models.Milestone{ID: "m1", Title: "same", Category: models.MilestoneAcademic, GradeLevel: 10}

	AddMilestone(&r, m)
	m.ID = "m2"
	AddMilestone(&r, m)

	// Repeated generation appending lookalike milestones is accepted.
	require.Len(t, r.Milestones, 2)
	assert.Equal(t, r.Milestones[0].Title, r.Milestones[1].Title)
}

func TestUpdateMilestoneReplacesInPlace(t *testing.T) {
	r := testRoadmap()
	AddMilestone(&r, models.Milestone{ID: "m1", Title: "one"})
	AddMilestone(&r, models.Milestone{ID: "m2", Title: "two"})

	UpdateMilestone(&r, models.Milestone{ID: "m1", Title: "one updated", IsCompleted: true})

	require.Len(t, r.Milestones, 2)
	assert.Equal(t, "one updated", r.Milestones[0].Title)
	assert.True(t, r.Milestones[0].IsCompleted)
	assert.Equal(t, "two", r.Milestones[1].Title)
}

func TestUpdateMilestoneUnknownIDIsNoOp(t *testing.T) {
	r := testRoadmap()
	AddMilestone(&r, models.Milestone{ID: "m1", Title: "one"})
	stamp := r.LastUpdated
	snapshot := append([]models.Milestone(nil), r.Milestones...)

	UpdateMilestone(&r, models.Milestone{ID: "ghost", Title: "nope"})

	assert.Equal(t, snapshot, r.Milestones)
	assert.Equal(t, stamp, r.LastUpdated)
}

func TestRemoveMilestone(t *testing.T) {
	r := testRoadmap()
	AddMilestone(&r, models.Milestone{ID: "m1"})
	AddMilestone(&r, models.Milestone{ID: "m2"})

	RemoveMilestone(&r, "m1")

	require.Len(t, r.Milestones, 1)
	assert.Equal(t, "m2", r.Milestones[0].ID)
}

func TestRemoveMilestoneUnknownIDIsNoOp(t *testing.T) {
	r := testRoadmap()
	AddMilestone(&r, models.Milestone{ID: "m1"})
	stamp := r.LastUpdated

	RemoveMilestone(&r, "ghost")

	assert.Len(t, r.Milestones, 1)
	assert.Equal(t, stamp, r.LastUpdated)
}

func TestResourceOperations(t *testing.T) {
	r := testRoadmap()
	AddResource(&r, models.Resource{ID: "r1", Title: "a", Type: models.ResourceBook})
	AddResource(&r, models.Resource{ID: "r2", Title: "b", Type: models.ResourceTool})

	UpdateResource(&r, models.Resource{ID: "r2", Title: "b updated", Type: models.ResourceTool})
	RemoveResource(&r, "r1")

	require.Len(t, r.Resources, 1)
	assert.Equal(t, "b updated", r.Resources[0].Title)

	stamp := r.LastUpdated
	UpdateResource(&r, models.Resource{ID: "ghost"})
	RemoveResource(&r, "ghost")
	assert.Equal(t, stamp, r.LastUpdated)
}

func TestApplyRecommendationsOrder(t *testing.T) {
	r := testRoadmap()
	recs := []models.AIRecommendation{
		{
			Title:      "First",
			GradeLevel: 10,
			Category:   models.MilestoneAcademic,
			Resources: []models.Resource{
				{ID: "res-a", Title: "A", Type: models.ResourceOnline, Category: models.ResourceCatSkill},
				{ID: "res-b", Title: "B", Type: models.ResourceBook, Category: models.ResourceCatSkill},
			},
		},
		{
			Title:      "Second",
			GradeLevel: 11,
			Category:   models.MilestoneTest,
			Resources: []models.Resource{
				{ID: "res-c", Title: "C", Type: models.ResourceCourse, Category: models.ResourceCatSkill},
			},
		},
	}

	ApplyRecommendations(&r, recs)

	// All milestones first, in recommendation order.
	require.Len(t, r.Milestones, 2)
	assert.Equal(t, "First", r.Milestones[0].Title)
	assert.Equal(t, "Second", r.Milestones[1].Title)
	assert.False(t, r.Milestones[0].IsCompleted)
	assert.NotEmpty(t, r.Milestones[0].ID)

	// Then all resources, in recommendation-then-resource order.
	require.Len(t, r.Resources, 3)
	assert.Equal(t, []string{"res-a", "res-b", "res-c"},
		[]string{r.Resources[0].ID, r.Resources[1].ID, r.Resources[2].ID})
}

func TestNewRoadmapDenormalizesUserState(t *testing.T) {
	user := models.User{ID: "user-7", CareerGoal: "architect", Grade: 11}
	r := NewRoadmap(user)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "user-7", r.UserID)
	assert.Equal(t, "architect", r.CareerGoal)
	assert.Equal(t, 11, r.Grade)
	assert.Empty(t, r.Milestones)
	assert.Empty(t, r.Resources)
	assert.False(t, r.LastUpdated.IsZero())
}
