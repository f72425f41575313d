package services

import (
	"time"

	"github.com/google/uuid"

	"journey-backend/models"
)

// Pure in-memory transforms on the roadmap aggregate, applied before
// persistence. Every mutation that changes a list refreshes LastUpdated;
// no-ops leave it untouched. Appends never deduplicate: repeated AI
// generation appending similar-looking milestones is accepted behavior.

func AddMilestone(r *models.CareerRoadmap, m models.Milestone) {
	r.Milestones = append(r.Milestones, m)
	touch(r)
}

// UpdateMilestone replaces the milestone with a matching identifier in
// place. An unknown identifier is a silent no-op.
func UpdateMilestone(r *models.CareerRoadmap, m models.Milestone) {
	for i := range r.Milestones {
		if r.Milestones[i].ID == m.ID {
			r.Milestones[i] = m
			touch(r)
			return
		}
	}
}

// RemoveMilestone deletes every milestone matching id (at most one is
// expected). Removing a non-existent identifier is a no-op.
func RemoveMilestone(r *models.CareerRoadmap, id string) {
	kept := r.Milestones[:0]
	for _, m := range r.Milestones {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) != len(r.Milestones) {
		r.Milestones = kept
		touch(r)
	}
}

func AddResource(r *models.CareerRoadmap, res models.Resource) {
	r.Resources = append(r.Resources, res)
	touch(r)
}

func UpdateResource(r *models.CareerRoadmap, res models.Resource) {
	for i := range r.Resources {
		if r.Resources[i].ID == res.ID {
			r.Resources[i] = res
			touch(r)
			return
		}
	}
}

func RemoveResource(r *models.CareerRoadmap, id string) {
	kept := r.Resources[:0]
	for _, res := range r.Resources {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	if len(kept) != len(r.Resources) {
		r.Resources = kept
		touch(r)
	}
}

// ApplyRecommendations ingests parsed recommendations: all milestones
// first, in recommendation order, then all resources, in
// recommendation-then-resource order.
func ApplyRecommendations(r *models.CareerRoadmap, recs []models.AIRecommendation) {
	for _, rec := range recs {
		AddMilestone(r, models.Milestone{
			ID:          uuid.NewString(),
			Title:       rec.Title,
			Description: rec.Description,
			DueDate:     rec.DueDate,
			IsCompleted: false,
			GradeLevel:  rec.GradeLevel,
			Category:    rec.Category,
		})
	}
	for _, rec := range recs {
		for _, res := range rec.Resources {
			AddResource(r, res)
		}
	}
}

// NewRoadmap builds an empty roadmap for a user.
func NewRoadmap(user models.User) models.CareerRoadmap {
	return models.CareerRoadmap{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		CareerGoal:  user.CareerGoal,
		Grade:       user.Grade,
		Milestones:  []models.Milestone{},
		Resources:   []models.Resource{},
		LastUpdated: time.Now().UTC(),
	}
}

func touch(r *models.CareerRoadmap) {
	r.LastUpdated = time.Now().UTC()
}
