package leaderboard

import (
	"time"

	"fittrack/backend/internal/models"
)

// Rank is a user's 1-based position within one ranking. Rank 0 means
// the user has no qualifying records for that ranking.
type Rank struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

// RankSummary carries a user's position across all four rankings.
type RankSummary struct {
	WeightLoss  Rank `json:"weightLoss"`
	Strength    Rank `json:"strength"`
	Consistency Rank `json:"consistency"`
	Hybrid      Rank `json:"hybrid"`
}

// Ranks locates a user within each of the four rankings. Positions are
// computed over the full ranked population, not the truncated top-10
// slice, so a user ranked 11th reports rank 11 rather than 0.
func Ranks(email string, users []models.User, entries []models.WeightEntry, completed []models.CompletedWorkout, now time.Time) RankSummary {
	weightLoss := weightLossRanking(users, entries, now)
	strength := strengthRanking(users, completed)
	consistency := consistencyRanking(users, completed)
	hybrid := hybridRanking(users, completed)

	summary := RankSummary{
		WeightLoss:  Rank{Total: len(weightLoss)},
		Strength:    Rank{Total: len(strength)},
		Consistency: Rank{Total: len(consistency)},
		Hybrid:      Rank{Total: len(hybrid)},
	}

	for i, entry := range weightLoss {
		if entry.Email == email {
			summary.WeightLoss.Rank = i + 1
			break
		}
	}
	for i, entry := range strength {
		if entry.Email == email {
			summary.Strength.Rank = i + 1
			break
		}
	}
	for i, entry := range consistency {
		if entry.Email == email {
			summary.Consistency.Rank = i + 1
			break
		}
	}
	for i, entry := range hybrid {
		if entry.Email == email {
			summary.Hybrid.Rank = i + 1
			break
		}
	}

	return summary
}
