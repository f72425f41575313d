package recommendations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"journey-backend/helpers"
	"journey-backend/loggers"
	"journey-backend/middleware"
	"journey-backend/models"
	"journey-backend/services"
	"journey-backend/storage"
)

// Handler runs the recommendation flow: user state in, AI text out,
// parsed records merged into the roadmap.
type Handler struct {
	Store *storage.Store
	AI    *services.AIClient
	Locks *services.UserLocks
}

// Generate issues one completion call, parses the structured-JSON reply
// and ingests the surviving recommendations: milestones first, then their
// resources, all appended without deduplication. The recommendation
// titles are also appended to the user's recommendation history.
func (h *Handler) Generate(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	unlock := h.Locks.Lock(userID)
	defer unlock()

	ctx := c.Request.Context()
	user, err := h.Store.GetUser(ctx, userID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "User not found"})
		return
	}

	var existing *models.CareerRoadmap
	roadmap, err := h.Store.GetRoadmapByUser(ctx, userID)
	switch {
	case err == nil:
		existing = &roadmap
	case errors.Is(err, models.ErrDocumentNotFound):
		roadmap = services.NewRoadmap(user)
	default:
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Failed to load roadmap"})
		return
	}

	raw, err := h.AI.Complete(ctx, services.CounselorSystemPrompt, services.RecommendationPrompt(user, existing))
	if err != nil {
		loggers.Logger.WithError(err).Error("recommendation call failed")
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Failed to generate recommendations"})
		return
	}

	recs, err := services.ParseRecommendations(raw)
	if err != nil {
		loggers.Logger.WithError(err).Error("unparsable recommendation response")
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Failed to parse recommendations"})
		return
	}

	services.ApplyRecommendations(&roadmap, recs)
	if err := h.Store.SaveRoadmap(ctx, roadmap); err != nil {
		loggers.Logger.WithError(err).Error("failed to save roadmap")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save roadmap"})
		return
	}

	for _, rec := range recs {
		user.Recommendations = append(user.Recommendations, rec.Title)
	}
	if err := h.Store.SaveUser(ctx, user); err != nil {
		loggers.Logger.WithError(err).Warn("failed to record recommendation history")
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs, "roadmap": roadmap})
}
