package roadmaps

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"journey-backend/helpers"
	"journey-backend/loggers"
	"journey-backend/middleware"
	"journey-backend/models"
	"journey-backend/services"
	"journey-backend/storage"
)

// Handler owns the roadmap aggregate endpoints. Every mutation takes the
// per-user lock so concurrent read-modify-write cycles cannot lose
// updates.
type Handler struct {
	Store *storage.Store
	AI    *services.AIClient
	Locks *services.UserLocks
}

type milestoneRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	GradeLevel  int    `json:"gradeLevel" binding:"required"`
	Category    string `json:"category" binding:"required"`
	DueDate     string `json:"dueDate"`
	IsCompleted bool   `json:"isCompleted"`
}

type resourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type" binding:"required"`
	GradeLevel  int    `json:"gradeLevel" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

func (h *Handler) GetRoadmap(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	roadmap, err := h.Store.GetRoadmapByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Roadmap not found"})
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

// GenerateRoadmap runs the full-roadmap flow: prompt from the user's
// profile, one completion call, outline parse, merge into the existing (or
// a fresh) roadmap, persist.
func (h *Handler) GenerateRoadmap(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	unlock := h.Locks.Lock(userID)
	defer unlock()

	ctx := c.Request.Context()
	user, err := h.Store.GetUser(ctx, userID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "User not found"})
		return
	}

	raw, err := h.AI.Complete(ctx, services.CounselorSystemPrompt, services.RoadmapPrompt(user))
	if err != nil {
		loggers.Logger.WithError(err).Error("roadmap generation call failed")
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Failed to generate roadmap"})
		return
	}

	milestones, resources := services.ParseRoadmapOutline(raw, user.Grade)

	roadmap, err := h.loadOrCreate(ctx, user)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Failed to load roadmap"})
		return
	}
	for _, m := range milestones {
		services.AddMilestone(&roadmap, m)
	}
	for _, r := range resources {
		services.AddResource(&roadmap, r)
	}

	if err := h.Store.SaveRoadmap(ctx, roadmap); err != nil {
		loggers.Logger.WithError(err).Error("failed to save roadmap")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save roadmap"})
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

func (h *Handler) AddMilestone(c *gin.Context) {
	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	milestone, ok := milestoneFromRequest(req, uuid.NewString())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category or due date"})
		return
	}

	h.mutate(c, func(roadmap *models.CareerRoadmap) {
		services.AddMilestone(roadmap, milestone)
	}, true)
}

func (h *Handler) UpdateMilestone(c *gin.Context) {
	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	milestone, ok := milestoneFromRequest(req, c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category or due date"})
		return
	}

	h.mutate(c, func(roadmap *models.CareerRoadmap) {
		services.UpdateMilestone(roadmap, milestone)
	}, false)
}

// ToggleMilestone flips completion and mirrors the new state into the
// user's progress map.
func (h *Handler) ToggleMilestone(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	milestoneID := c.Param("id")
	unlock := h.Locks.Lock(userID)
	defer unlock()

	ctx := c.Request.Context()
	roadmap, err := h.Store.GetRoadmapByUser(ctx, userID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Roadmap not found"})
		return
	}

	var toggled *models.Milestone
	for _, m := range roadmap.Milestones {
		if m.ID == milestoneID {
			m.IsCompleted = !m.IsCompleted
			services.UpdateMilestone(&roadmap, m)
			toggled = &m
			break
		}
	}
	if toggled == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	if err := h.Store.SaveRoadmap(ctx, roadmap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save roadmap"})
		return
	}

	if user, err := h.Store.GetUser(ctx, userID); err == nil {
		if user.Progress == nil {
			user.Progress = map[string]bool{}
		}
		user.Progress[milestoneID] = toggled.IsCompleted
		if err := h.Store.SaveUser(ctx, user); err != nil {
			loggers.Logger.WithError(err).Warn("failed to mirror progress onto user")
		}
	}

	c.JSON(http.StatusOK, roadmap)
}

func (h *Handler) DeleteMilestone(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, func(roadmap *models.CareerRoadmap) {
		services.RemoveMilestone(roadmap, id)
	}, false)
}

func (h *Handler) AddResource(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	resType, okType := models.ParseResourceType(req.Type)
	category, okCat := models.ParseResourceCategory(req.Category)
	if !okType || !okCat {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource type or category"})
		return
	}
	resource := models.Resource{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Type:        resType,
		GradeLevel:  req.GradeLevel,
		Category:    category,
	}

	h.mutate(c, func(roadmap *models.CareerRoadmap) {
		services.AddResource(roadmap, resource)
	}, true)
}

func (h *Handler) DeleteResource(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, func(roadmap *models.CareerRoadmap) {
		services.RemoveResource(roadmap, id)
	}, false)
}

// mutate runs apply on the user's roadmap under the per-user lock and
// persists the result. createIfMissing covers the add operations, which
// may be the first write a user ever makes.
func (h *Handler) mutate(c *gin.Context, apply func(*models.CareerRoadmap), createIfMissing bool) {
	userID := c.GetString(middleware.UserIDKey)
	unlock := h.Locks.Lock(userID)
	defer unlock()

	ctx := c.Request.Context()
	var roadmap models.CareerRoadmap
	var err error
	if createIfMissing {
		var user models.User
		user, err = h.Store.GetUser(ctx, userID)
		if err != nil {
			c.JSON(helpers.StatusForError(err), gin.H{"error": "User not found"})
			return
		}
		roadmap, err = h.loadOrCreate(ctx, user)
	} else {
		roadmap, err = h.Store.GetRoadmapByUser(ctx, userID)
	}
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Roadmap not found"})
		return
	}

	apply(&roadmap)

	if err := h.Store.SaveRoadmap(ctx, roadmap); err != nil {
		loggers.Logger.WithError(err).Error("failed to save roadmap")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save roadmap"})
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

func (h *Handler) loadOrCreate(ctx context.Context, user models.User) (models.CareerRoadmap, error) {
	roadmap, err := h.Store.GetRoadmapByUser(ctx, user.ID)
	if errors.Is(err, models.ErrDocumentNotFound) {
		return services.NewRoadmap(user), nil
	}
	return roadmap, err
}

func milestoneFromRequest(req milestoneRequest, id string) (models.Milestone, bool) {
	category, ok := models.ParseMilestoneCategory(req.Category)
	if !ok {
		return models.Milestone{}, false
	}
	m := models.Milestone{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		GradeLevel:  req.GradeLevel,
		Category:    category,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return models.Milestone{}, false
		}
		m.DueDate = &due
	}
	return m, true
}
