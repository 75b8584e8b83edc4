package handler

import (
	"net/http"
	"time"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/leaderboard"
	"fittrack/backend/internal/models"

	"github.com/gin-gonic/gin"
)

func leaderboardUsers(c *gin.Context) ([]models.User, bool) {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return nil, false
	}
	return users, true
}

func allWeightEntries(c *gin.Context) ([]models.WeightEntry, bool) {
	var entries []models.WeightEntry
	if err := database.DB.Order("date DESC").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return nil, false
	}
	return entries, true
}

func allCompletedWorkouts(c *gin.Context) ([]models.CompletedWorkout, bool) {
	var completed []models.CompletedWorkout
	if err := database.DB.Order("completed_date DESC").Find(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return nil, false
	}
	return completed, true
}

// GetWeightLossLeaderboard godoc
// @Summary      Weight-loss leaderboard
// @Description  Top 10 users by weight lost, with a consistency bonus for weigh-ins this week.
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   leaderboard.WeightLossEntry
// @Failure      500  {object}  ErrorResponse
// @Router       /leaderboard/weight-loss [get]
func GetWeightLossLeaderboard(c *gin.Context) {
	users, ok := leaderboardUsers(c)
	if !ok {
		return
	}
	entries, ok := allWeightEntries(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, leaderboard.WeightLoss(users, entries, time.Now()))
}

// GetStrengthLeaderboard godoc
// @Summary      Strength leaderboard
// @Description  Top 10 users by total lifted volume across completed workouts.
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   leaderboard.StrengthEntry
// @Failure      500  {object}  ErrorResponse
// @Router       /leaderboard/strength [get]
func GetStrengthLeaderboard(c *gin.Context) {
	users, ok := leaderboardUsers(c)
	if !ok {
		return
	}
	completed, ok := allCompletedWorkouts(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, leaderboard.Strength(users, completed))
}

// GetConsistencyLeaderboard godoc
// @Summary      Consistency leaderboard
// @Description  Top 10 users by completed workouts plus ten points per distinct active day.
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   leaderboard.ConsistencyEntry
// @Failure      500  {object}  ErrorResponse
// @Router       /leaderboard/consistency [get]
func GetConsistencyLeaderboard(c *gin.Context) {
	users, ok := leaderboardUsers(c)
	if !ok {
		return
	}
	completed, ok := allCompletedWorkouts(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, leaderboard.Consistency(users, completed))
}

// GetHybridLeaderboard godoc
// @Summary      Hybrid leaderboard
// @Description  Top 10 users by snapshot volume plus ten points per distinct active day.
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   leaderboard.HybridEntry
// @Failure      500  {object}  ErrorResponse
// @Router       /leaderboard/hybrid [get]
func GetHybridLeaderboard(c *gin.Context) {
	users, ok := leaderboardUsers(c)
	if !ok {
		return
	}
	completed, ok := allCompletedWorkouts(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, leaderboard.Hybrid(users, completed))
}

// GetUserRanks godoc
// @Summary      Per-user ranks
// @Description  The user's position in each of the four rankings, computed over the full population.
// @Tags         leaderboard
// @Produce      json
// @Param        email path string true "User Email"
// @Success      200  {object}  leaderboard.RankSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /leaderboard/ranks/{email} [get]
func GetUserRanks(c *gin.Context) {
	users, ok := leaderboardUsers(c)
	if !ok {
		return
	}
	entries, ok := allWeightEntries(c)
	if !ok {
		return
	}
	completed, ok := allCompletedWorkouts(c)
	if !ok {
		return
	}

	ranks := leaderboard.Ranks(c.Param("email"), users, entries, completed, time.Now())
	c.JSON(http.StatusOK, ranks)
}
