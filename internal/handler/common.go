package handler

import (
	"net/http"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/friends"
	"fittrack/backend/internal/models"
	"fittrack/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Package-level collaborators, wired in main before the router starts.
var (
	FriendService *friends.Service
	Images        storage.ImageStore
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// UserSummary is the public identity slice of a profile.
type UserSummary struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

func newUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}
}

// currentUser loads the authenticated user's record. It writes the
// error response itself when the lookup fails.
func currentUser(c *gin.Context) (models.User, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return models.User{}, false
	}

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return models.User{}, false
	}
	return user, true
}
