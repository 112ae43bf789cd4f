// Package okr holds the pure progress and status calculations shared by the
// dashboard and objective endpoints. Everything here is side-effect free and
// operates on records already fetched from the database.
package okr

import (
	"math"

	"okr-tracker-backend/internal/database/models"
)

// AverageProgress returns the rounded arithmetic mean of the given progress
// values, or 0 for an empty list. Inputs are assumed to already be in [0,100];
// no clamping happens at this level.
func AverageProgress(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

// KeyResultProgress derives a completion percentage from a current/target
// value pair: round(clamp(current/target*100, 0, 100)). A non-positive target
// yields 0 so degenerate rows never produce NaN or a division error.
func KeyResultProgress(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}

// ObjectiveProgress is the average of an objective's key result progress
// values, 0 when it has none.
func ObjectiveProgress(obj *models.Objective) int {
	values := make([]int, 0, len(obj.KeyResults))
	for _, kr := range obj.KeyResults {
		values = append(values, kr.Progress)
	}
	return AverageProgress(values)
}

// TeamProgress is the flat average over every key result of every objective
// of the team. Objectives are NOT averaged individually first, so an
// objective with more key results weighs proportionally more.
func TeamProgress(team *models.Team) int {
	var values []int
	for _, obj := range team.Objectives {
		for _, kr := range obj.KeyResults {
			values = append(values, kr.Progress)
		}
	}
	return AverageProgress(values)
}
