package admins

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journey-backend/helpers"
	"journey-backend/loggers"
	"journey-backend/middleware"
	"journey-backend/storage"
)

// Handler serves admin accounts. Accounts are created out-of-band; the
// only mutations here are school list edits.
type Handler struct {
	Store *storage.Store
}

type schoolRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) GetProfile(c *gin.Context) {
	adminID := c.GetString(middleware.UserIDKey)
	admin, err := h.Store.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Admin not found"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *Handler) AddSchool(c *gin.Context) {
	var req schoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := c.Request.Context()
	adminID := c.GetString(middleware.UserIDKey)
	admin, err := h.Store.GetAdmin(ctx, adminID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Admin not found"})
		return
	}

	for _, school := range admin.Schools {
		if school == req.Name {
			c.JSON(http.StatusOK, admin)
			return
		}
	}
	admin.Schools = append(admin.Schools, req.Name)

	if err := h.Store.SaveAdmin(ctx, admin); err != nil {
		loggers.Logger.WithError(err).Error("failed to save admin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving admin"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *Handler) RemoveSchool(c *gin.Context) {
	name := c.Param("name")

	ctx := c.Request.Context()
	adminID := c.GetString(middleware.UserIDKey)
	admin, err := h.Store.GetAdmin(ctx, adminID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Admin not found"})
		return
	}

	kept := admin.Schools[:0]
	for _, school := range admin.Schools {
		if school != name {
			kept = append(kept, school)
		}
	}
	admin.Schools = kept

	if err := h.Store.SaveAdmin(ctx, admin); err != nil {
		loggers.Logger.WithError(err).Error("failed to save admin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving admin"})
		return
	}
	c.JSON(http.StatusOK, admin)
}
