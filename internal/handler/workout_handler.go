package handler

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// WorkoutInput defines the structure for creating or updating a workout.
type WorkoutInput struct {
	Name         string  `json:"name" binding:"required" example:"Push Day"`
	Description  string  `json:"description" example:"Chest and triceps"`
	Category     string  `json:"category" binding:"required" example:"Strength"`
	Target       string  `json:"target" example:"Chest"`
	ExerciseName string  `json:"exerciseName" binding:"required" example:"Bench Press"`
	Sets         int     `json:"sets" binding:"required" example:"3"`
	Reps         int     `json:"reps" binding:"required" example:"10"`
	Weight       float64 `json:"weight" example:"60"`
}

// GetWorkouts godoc
// @Summary      List workouts
// @Description  Lists the authenticated user's workout definitions.
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Workout
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /workouts [get]
func GetWorkouts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var workouts []models.Workout
	if err := database.DB.Where("user_email = ?", user.Email).Find(&workouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// CreateWorkout godoc
// @Summary      Create a workout
// @Description  Creates a workout definition for the authenticated user. Bodyweight workouts store weight 0.
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body WorkoutInput true "Workout Info"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /workouts [post]
func CreateWorkout(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	workout := models.Workout{
		UserEmail:    user.Email,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Target:       input.Target,
		ExerciseName: input.ExerciseName,
		Sets:         input.Sets,
		Reps:         input.Reps,
		Weight:       input.Weight,
	}
	workout.Normalize()
	if err := workout.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating workout"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout created successfully",
		"workout": workout,
	})
}

// UpdateWorkout godoc
// @Summary      Update a workout
// @Description  Updates one of the authenticated user's workout definitions.
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Workout ID"
// @Param        input body      WorkoutInput  true  "New Workout Info"
// @Success      200  {object}  models.Workout
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Workout not found or unauthorized"
// @Failure      500  {object}  ErrorResponse
// @Router       /workouts/{id} [put]
func UpdateWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout ID"})
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var workout models.Workout
	if err := database.DB.Where("id = ? AND user_email = ?", id, user.Email).First(&workout).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found or unauthorized"})
		return
	}

	workout.Name = input.Name
	workout.Description = input.Description
	workout.Category = input.Category
	workout.Target = input.Target
	workout.ExerciseName = input.ExerciseName
	workout.Sets = input.Sets
	workout.Reps = input.Reps
	workout.Weight = input.Weight
	workout.Normalize()
	if err := workout.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating workout"})
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary      Delete a workout
// @Description  Deletes one of the authenticated user's workout definitions.
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Workout ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Workout not found or unauthorized"
// @Router       /workouts/{id} [delete]
func DeleteWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout ID"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	result := database.DB.Where("id = ? AND user_email = ?", id, user.Email).Delete(&models.Workout{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting workout"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found or unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

// CompleteWorkout godoc
// @Summary      Complete a workout
// @Description  Records an immutable completion snapshot of the workout definition.
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Workout ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Workout not found or unauthorized"
// @Failure      500  {object}  ErrorResponse
// @Router       /workouts/{id}/complete [post]
func CompleteWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout ID"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var workout models.Workout
	if err := database.DB.Where("id = ? AND user_email = ?", id, user.Email).First(&workout).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found or unauthorized"})
		return
	}

	completed := models.NewCompletedWorkout(workout, user, time.Now())
	if err := database.DB.Create(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking workout as completed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Workout marked as completed",
		"completedWorkout": completed,
	})
}

// GetCompletedWorkouts godoc
// @Summary      List completed workouts
// @Description  Lists the authenticated user's completed workouts, newest first, paginated.
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[models.CompletedWorkout]
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /workouts/completed [get]
func GetCompletedWorkouts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	query := database.DB.Where("user_email = ?", user.Email).Order("completed_date DESC")
	response, err := Paginate[models.CompletedWorkout](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completed workouts"})
		return
	}

	c.JSON(http.StatusOK, response)
}
