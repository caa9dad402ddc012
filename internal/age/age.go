package age

import "time"

// AgeData computes display age and whether timing data exists.
func AgeData(createdAt time.Time, now time.Time) (time.Duration, bool) {
	if createdAt.IsZero() {
		return 0, false
	}

	duration := now.Sub(createdAt)
	if duration < 0 {
		duration = 0
	}
	return duration, true
}
