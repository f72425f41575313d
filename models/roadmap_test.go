package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validRoadmapDoc() Document {
	return Document{
		"_id":         "rm-1",
		"userId":      "user-1",
		"careerGoal":  "nurse",
		"grade":       10,
		"milestones":  []interface{}{},
		"resources":   []interface{}{},
		"lastUpdated": time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRoadmapDocumentRoundTrip(t *testing.T) {
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	r := CareerRoadmap{
		ID:         "rm-1",
		UserID:     "user-1",
		CareerGoal: "nurse",
		Grade:      10,
		Milestones: []Milestone{
			{ID: "m1", Title: "Biology", Description: "honors", DueDate: &due, IsCompleted: true, GradeLevel: 10, Category: MilestoneAcademic},
			{ID: "m2", Title: "Volunteer", Description: "", GradeLevel: 11, Category: MilestoneExtracurricular},
		},
		Resources: []Resource{
			{ID: "r1", Title: "Khan", Description: "videos", URL: "https://khanacademy.org", Type: ResourceOnline, GradeLevel: 10, Category: ResourceCatSkill},
		},
		LastUpdated: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	decoded, err := RoadmapFromDocument(r.Document())
	require.NoError(t, err)
	assert.Equal(t, r, decoded)
}

func TestRoadmapFromDocumentMissingUserID(t *testing.T) {
	doc := validRoadmapDoc()
	delete(doc, "userId")

	_, err := RoadmapFromDocument(doc)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestRoadmapFromDocumentDropsBadElements(t *testing.T) {
	doc := validRoadmapDoc()
	doc["milestones"] = []interface{}{
		Milestone{ID: "ok", Title: "t", Description: "d", GradeLevel: 9, Category: MilestoneSkill}.Document(),
		// Unrecognized category: drop this record, not the roadmap.
		Document{"id": "bad", "title": "t", "description": "d", "isCompleted": false, "gradeLevel": 9, "category": "misc"},
		// Missing required field: same treatment.
		Document{"id": "bad2", "title": "t"},
	}
	doc["resources"] = []interface{}{
		Document{"id": "bad3", "title": "t", "description": "d", "url": "", "type": "podcast", "gradeLevel": 9, "category": "skill"},
		Resource{ID: "ok2", Title: "t", Description: "", URL: "", Type: ResourceBook, GradeLevel: 9, Category: ResourceCatCareer}.Document(),
	}

	r, err := RoadmapFromDocument(doc)
	require.NoError(t, err)
	require.Len(t, r.Milestones, 1)
	assert.Equal(t, "ok", r.Milestones[0].ID)
	require.Len(t, r.Resources, 1)
	assert.Equal(t, "ok2", r.Resources[0].ID)
}

func TestRoadmapFromDocumentDriverShapes(t *testing.T) {
	// The driver hands back primitive.A for lists, primitive.DateTime for
	// timestamps and int32 for small integers.
	doc := validRoadmapDoc()
	doc["grade"] = int32(12)
	doc["lastUpdated"] = primitive.NewDateTimeFromTime(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	doc["milestones"] = primitive.A{
		primitive.M{"id": "m1", "title": "t", "description": "", "isCompleted": false, "gradeLevel": int64(12), "category": "TEST"},
	}

	r, err := RoadmapFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 12, r.Grade)
	require.Len(t, r.Milestones, 1)
	assert.Equal(t, MilestoneTest, r.Milestones[0].Category)
	assert.Equal(t, 12, r.Milestones[0].GradeLevel)
}

func TestMilestoneCategoryParsing(t *testing.T) {
	for raw, want := range map[string]MilestoneCategory{
		"academic":        MilestoneAcademic,
		"Extracurricular": MilestoneExtracurricular,
		"SKILL":           MilestoneSkill,
		" test ":          MilestoneTest,
		"Application":     MilestoneApplication,
	} {
		got, ok := ParseMilestoneCategory(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got)
	}

	_, ok := ParseMilestoneCategory("career")
	assert.False(t, ok, "career is a resource category, not a milestone one")
}

func TestResourceCategoryIsDistinctEnumeration(t *testing.T) {
	_, ok := ParseResourceCategory("career")
	assert.True(t, ok)
	_, ok = ParseResourceCategory("extracurricular")
	assert.False(t, ok)
}
