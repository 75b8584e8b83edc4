// Package leaderboard computes the four activity rankings from
// in-memory snapshots of users, weigh-ins and completed workouts.
// Scores are recomputed on every request; nothing is persisted.
package leaderboard

import (
	"sort"
	"time"

	"fittrack/backend/internal/models"
)

// TopN is the maximum number of entries a leaderboard returns.
const TopN = 10

// WeightLossEntry is one row of the weight-loss leaderboard.
type WeightLossEntry struct {
	UserID           uint    `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	ProfilePicture   string  `json:"profilePicture"`
	StartingWeight   float64 `json:"startingWeight"`
	CurrentWeight    float64 `json:"currentWeight"`
	WeightLoss       float64 `json:"weightLoss"`
	ConsistencyBonus float64 `json:"consistencyBonus"`
	WeighInDays      int     `json:"weighInDays"`
	TotalScore       float64 `json:"totalScore"`
}

// StrengthEntry is one row of the strength leaderboard.
type StrengthEntry struct {
	UserID         uint    `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	ProfilePicture string  `json:"profilePicture"`
	StrengthScore  float64 `json:"strengthScore"`
	WorkoutCount   int     `json:"workoutCount"`
	TotalVolume    float64 `json:"totalVolume"`
}

// ConsistencyEntry is one row of the consistency leaderboard.
type ConsistencyEntry struct {
	UserID           uint   `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	ProfilePicture   string `json:"profilePicture"`
	TotalWorkouts    int    `json:"totalWorkouts"`
	ActiveDays       int    `json:"activeDays"`
	ConsistencyScore int    `json:"consistencyScore"`
}

// HybridEntry is one row of the hybrid leaderboard.
type HybridEntry struct {
	UserID         uint    `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	ProfilePicture string  `json:"profilePicture"`
	TotalVolume    float64 `json:"totalVolume"`
	ActiveDays     int     `json:"activeDays"`
	HybridScore    float64 `json:"hybridScore"`
	TotalWorkouts  int     `json:"totalWorkouts"`
}

// WeightLoss ranks users by weight lost between their starting and
// newest recorded weight, boosted by a consistency bonus for distinct
// weigh-in days within the current week. The bonus always looks at the
// current week, regardless of when the compared weights were logged.
func WeightLoss(users []models.User, entries []models.WeightEntry, now time.Time) []WeightLossEntry {
	return truncate(weightLossRanking(users, entries, now))
}

func weightLossRanking(users []models.User, entries []models.WeightEntry, now time.Time) []WeightLossEntry {
	byUser := make(map[string][]models.WeightEntry)
	for _, e := range entries {
		byUser[e.UserEmail] = append(byUser[e.UserEmail], e)
	}

	weekStart := StartOfWeek(now)

	var ranking []WeightLossEntry
	for _, user := range users {
		logs := byUser[user.Email]
		if len(logs) == 0 {
			continue
		}

		// Newest first.
		sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date.After(logs[j].Date) })

		startingWeight := user.InitialWeight
		if startingWeight == 0 {
			startingWeight = logs[len(logs)-1].Weight
		}
		currentWeight := logs[0].Weight

		weighInDays := make(map[string]struct{})
		for _, e := range logs {
			if !e.Date.Before(weekStart) {
				weighInDays[dayKey(e.Date)] = struct{}{}
			}
		}
		bonus := ConsistencyBonus(len(weighInDays))

		weightLoss := startingWeight - currentWeight
		ranking = append(ranking, WeightLossEntry{
			UserID:           user.ID,
			FirstName:        user.FirstName,
			LastName:         user.LastName,
			Email:            user.Email,
			ProfilePicture:   user.ProfilePicture,
			StartingWeight:   startingWeight,
			CurrentWeight:    currentWeight,
			WeightLoss:       weightLoss,
			ConsistencyBonus: bonus,
			WeighInDays:      len(weighInDays),
			TotalScore:       weightLoss * (1 + bonus),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].TotalScore > ranking[j].TotalScore })
	return ranking
}

// Strength ranks users by total lifted volume across all completed
// workouts. Bodyweight records count the user's current body weight
// instead of the stored snapshot.
func Strength(users []models.User, completed []models.CompletedWorkout) []StrengthEntry {
	return truncate(strengthRanking(users, completed))
}

func strengthRanking(users []models.User, completed []models.CompletedWorkout) []StrengthEntry {
	byUser := groupCompleted(completed)

	var ranking []StrengthEntry
	for _, user := range users {
		workouts := byUser[user.Email]
		if len(workouts) == 0 {
			continue
		}

		var score float64
		for _, w := range workouts {
			weight := w.WeightLifted
			if w.Category == models.CategoryBodyweight {
				weight = user.Weight
			}
			score += weight * float64(w.SetsCompleted) * float64(w.RepsCompleted)
		}

		ranking = append(ranking, StrengthEntry{
			UserID:         user.ID,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			Email:          user.Email,
			ProfilePicture: user.ProfilePicture,
			StrengthScore:  score,
			WorkoutCount:   len(workouts),
			TotalVolume:    score,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].StrengthScore > ranking[j].StrengthScore })
	return ranking
}

// Consistency ranks users by completed-workout count plus ten points
// per distinct active day.
func Consistency(users []models.User, completed []models.CompletedWorkout) []ConsistencyEntry {
	return truncate(consistencyRanking(users, completed))
}

func consistencyRanking(users []models.User, completed []models.CompletedWorkout) []ConsistencyEntry {
	byUser := groupCompleted(completed)

	var ranking []ConsistencyEntry
	for _, user := range users {
		workouts := byUser[user.Email]
		if len(workouts) == 0 {
			continue
		}

		days := activeDays(workouts)
		ranking = append(ranking, ConsistencyEntry{
			UserID:           user.ID,
			FirstName:        user.FirstName,
			LastName:         user.LastName,
			Email:            user.Email,
			ProfilePicture:   user.ProfilePicture,
			TotalWorkouts:    len(workouts),
			ActiveDays:       days,
			ConsistencyScore: len(workouts) + days*10,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].ConsistencyScore > ranking[j].ConsistencyScore })
	return ranking
}

// Hybrid ranks users by total volume from the stored snapshots (not
// re-derived for bodyweight) plus ten points per distinct active day.
func Hybrid(users []models.User, completed []models.CompletedWorkout) []HybridEntry {
	return truncate(hybridRanking(users, completed))
}

func hybridRanking(users []models.User, completed []models.CompletedWorkout) []HybridEntry {
	byUser := groupCompleted(completed)

	var ranking []HybridEntry
	for _, user := range users {
		workouts := byUser[user.Email]
		if len(workouts) == 0 {
			continue
		}

		var totalVolume float64
		for _, w := range workouts {
			totalVolume += w.WeightLifted * float64(w.RepsCompleted) * float64(w.SetsCompleted)
		}

		days := activeDays(workouts)
		ranking = append(ranking, HybridEntry{
			UserID:         user.ID,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			Email:          user.Email,
			ProfilePicture: user.ProfilePicture,
			TotalVolume:    totalVolume,
			ActiveDays:     days,
			HybridScore:    totalVolume + float64(days*10),
			TotalWorkouts:  len(workouts),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].HybridScore > ranking[j].HybridScore })
	return ranking
}

// StartOfWeek returns midnight of the most recent Sunday at or before t,
// in t's location.
func StartOfWeek(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(t.Weekday()))
}

// ConsistencyBonus maps distinct weigh-in days this week to a score
// multiplier bonus: 5+ days earn 50%, 3-4 earn 25%, 1-2 earn 10%.
func ConsistencyBonus(days int) float64 {
	switch {
	case days >= 5:
		return 0.5
	case days >= 3:
		return 0.25
	case days >= 1:
		return 0.1
	default:
		return 0
	}
}

func groupCompleted(completed []models.CompletedWorkout) map[string][]models.CompletedWorkout {
	byUser := make(map[string][]models.CompletedWorkout)
	for _, w := range completed {
		byUser[w.UserEmail] = append(byUser[w.UserEmail], w)
	}
	return byUser
}

func activeDays(workouts []models.CompletedWorkout) int {
	days := make(map[string]struct{})
	for _, w := range workouts {
		days[dayKey(w.CompletedDate)] = struct{}{}
	}
	return len(days)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncate[T any](ranking []T) []T {
	if len(ranking) > TopN {
		return ranking[:TopN]
	}
	return ranking
}
