package handler

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// LogWeightInput defines the structure for a new weigh-in.
type LogWeightInput struct {
	Weight float64 `json:"weight" binding:"required" example:"70.5"`
}

// LogWeight godoc
// @Summary      Log a weight entry
// @Description  Appends a weigh-in for today. One entry per calendar day; daily gain/loss limits apply.
// @Tags         weight
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body LogWeightInput true "Weigh-in"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /weight [post]
func LogWeight(c *gin.Context) {
	var input LogWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := models.ValidateWeightValue(input.Weight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	var existing models.WeightEntry
	err := database.DB.
		Where("user_id = ? AND date >= ? AND date < ?", user.ID, today, today.AddDate(0, 0, 1)).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already logged your weight today. Please come back tomorrow!"})
		return
	}

	if err := models.ValidateWeightChange(user.Weight, input.Weight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.WeightEntry{
		UserID:    user.ID,
		UserEmail: user.Email,
		Weight:    input.Weight,
		Date:      now,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging weight"})
		return
	}

	// The weigh-in becomes the user's current weight.
	if err := database.DB.Model(&user).Update("weight", input.Weight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating current weight"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"weight":        entry,
		"currentWeight": input.Weight,
	})
}

// GetWeightHistory godoc
// @Summary      Get weight history
// @Description  Lists the authenticated user's weigh-ins, newest first, paginated.
// @Tags         weight
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[models.WeightEntry]
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /weight/history [get]
func GetWeightHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	query := database.DB.Where("user_id = ?", user.ID).Order("date DESC")
	response, err := Paginate[models.WeightEntry](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weight history"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteWeight godoc
// @Summary      Delete a weight entry
// @Description  Deletes one of the authenticated user's weigh-ins by ID.
// @Tags         weight
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Weight Entry ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /weight/{id} [delete]
func DeleteWeight(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight entry ID"})
		return
	}

	result := database.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.WeightEntry{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete weight entry"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Weight record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weight record deleted successfully"})
}
