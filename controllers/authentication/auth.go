package authentication

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"journey-backend/helpers"
	"journey-backend/loggers"
	"journey-backend/middleware"
	"journey-backend/models"
	"journey-backend/storage"
)

// Handler owns the email/password auth flows and the profile endpoints.
type Handler struct {
	Store     *storage.Store
	JWTSecret []byte
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileUpdateRequest struct {
	Name       *string   `json:"name"`
	Grade      *int      `json:"grade"`
	CareerGoal *string   `json:"careerGoal"`
	School     *string   `json:"school"`
	Location   *string   `json:"location"`
	Interests  *[]string `json:"interests"`
	DistrictID *string   `json:"districtId"`
}

// Register creates a minimal user record at first sign-in. Profile
// completion fills in the rest via UpdateProfile.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	_, err := h.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if !errors.Is(err, models.ErrDocumentNotFound) {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "Error checking existing user"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	user := models.User{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Grade:           9,
		Interests:       []string{},
		Progress:        map[string]bool{},
		Recommendations: []string{},
		CreatedAt:       time.Now().UTC(),
		PasswordHash:    string(hashed),
	}
	if err := h.Store.SaveUser(c.Request.Context(), user); err != nil {
		loggers.Logger.WithError(err).Error("failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	token, err := helpers.GenerateToken(h.JWTSecret, user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	loggers.Logger.WithField("userID", user.ID).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := helpers.GenerateToken(h.JWTSecret, user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout acknowledges the sign-out; the token is discarded client-side.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	user, err := h.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial profile edit; absent fields keep their
// stored values.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	user, err := h.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(helpers.StatusForError(err), gin.H{"error": "User not found"})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Grade != nil {
		if *req.Grade < 9 || *req.Grade > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Grade must be between 9 and 12"})
			return
		}
		user.Grade = *req.Grade
	}
	if req.CareerGoal != nil {
		user.CareerGoal = *req.CareerGoal
	}
	if req.School != nil {
		user.School = *req.School
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.DistrictID != nil {
		user.DistrictID = *req.DistrictID
	}

	if err := h.Store.SaveUser(c.Request.Context(), user); err != nil {
		loggers.Logger.WithError(err).Error("failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}
