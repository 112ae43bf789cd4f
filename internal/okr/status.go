package okr

import (
	"math"
	"time"
)

// Status is a discrete label derived from a progress percentage
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusOnTrack   Status = "On Track"
	StatusAtRisk    Status = "At Risk"
	StatusOffTrack  Status = "Off Track"
)

// Health is the four-tier system-wide label on the admin dashboard
type Health string

const (
	HealthExcellent Health = "Excellent"
	HealthGood      Health = "Good"
	HealthFair      Health = "Fair"
	HealthPoor      Health = "Poor"
)

// Activity window lengths. The dashboard counts recent progress updates over
// the trailing week; active-user and manager-activity views use a month.
const (
	DashboardActivityWindow = 7 * 24 * time.Hour
	UserActivityWindow      = 30 * 24 * time.Hour
)

// ClassifyDeliveryStatus maps team and team-objective progress to a status.
// Boundary values belong to the higher band.
func ClassifyDeliveryStatus(progress int) Status {
	switch {
	case progress >= 70:
		return StatusOnTrack
	case progress >= 40:
		return StatusAtRisk
	default:
		return StatusOffTrack
	}
}

// ClassifyPersonalStatus maps personal-objective progress to a status using
// the stricter cut points the member and manager views depend on. It is a
// deliberately separate policy from ClassifyDeliveryStatus; the two must not
// be unified.
func ClassifyPersonalStatus(progress int) Status {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress >= 80:
		return StatusOnTrack
	case progress >= 50:
		return StatusAtRisk
	default:
		return StatusOffTrack
	}
}

// HealthScore maps the system-wide average progress to the dashboard label
func HealthScore(progress int) Health {
	switch {
	case progress >= 80:
		return HealthExcellent
	case progress >= 60:
		return HealthGood
	case progress >= 40:
		return HealthFair
	default:
		return HealthPoor
	}
}

// DaysUntilDue returns ceil((due-now)/24h). Negative means overdue. This is a
// point-in-time calculation recomputed on every request.
func DaysUntilDue(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// IsOverdue reports whether the due date has passed as of now
func IsOverdue(due, now time.Time) bool {
	return DaysUntilDue(due, now) < 0
}

// ChangeType labels the delta of a progress update relative to the key
// result's stored progress at read time. Because the log row is immutable and
// the key result is mutated separately, the comparison baseline may already
// reflect this very update; that read-time behavior is intentional.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNone     ChangeType = "no_change"
)

// ClassifyChange compares an update's new value (as a derived percentage)
// against the key result's current stored progress.
func ClassifyChange(newProgress, currentProgress int) ChangeType {
	switch {
	case newProgress > currentProgress:
		return ChangeIncrease
	case newProgress < currentProgress:
		return ChangeDecrease
	default:
		return ChangeNone
	}
}
