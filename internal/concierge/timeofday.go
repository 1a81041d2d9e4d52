package concierge

import "github.com/nycpoi/poiconcierge/internal/models"

// BucketForHour maps an hour of day (0-23) onto a time-of-day bucket using
// the configured boundaries. Night wraps past midnight until morning starts.
func BucketForHour(hour int, cfg models.RankerConfig) models.TimeOfDay {
	switch {
	case hour >= cfg.NightStartHour || hour < cfg.MorningStartHour:
		return models.TimeNight
	case hour < cfg.LunchStartHour:
		return models.TimeMorning
	case hour < cfg.AfternoonStartHour:
		return models.TimeLunch
	case hour < cfg.EveningStartHour:
		return models.TimeAfternoon
	default:
		return models.TimeEvening
	}
}
