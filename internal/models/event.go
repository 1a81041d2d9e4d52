package models

import "time"

// BaseEvent is the common envelope for analytics events
type BaseEvent struct {
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"eventType"`
}

func NewBaseEvent(eventType string, timestamp time.Time) BaseEvent {
	return BaseEvent{
		Timestamp: timestamp.Unix(),
		EventType: eventType,
	}
}

// SearchEvent records a served plain search
type SearchEvent struct {
	BaseEvent
	Origin       Location `json:"origin"`
	RadiusMeters float64  `json:"radiusMeters"`
	Categories   []string `json:"categories,omitempty"`
	ResultCount  int      `json:"resultCount"`
	TopPOIID     string   `json:"topPoiId,omitempty"`
	TookMs       int64    `json:"tookMs"`
}

// RecommendationEvent records a served contextual recommendation
type RecommendationEvent struct {
	BaseEvent
	Origin       Location         `json:"origin"`
	RadiusMeters float64          `json:"radiusMeters"`
	Occasion     Occasion         `json:"occasion,omitempty"`
	Weather      WeatherCondition `json:"weather,omitempty"`
	TimeOfDay    TimeOfDay        `json:"timeOfDay"`
	GroupSize    int              `json:"groupSize"`
	ResultCount  int              `json:"resultCount"`
	TopPOIID     string           `json:"topPoiId,omitempty"`
	TookMs       int64            `json:"tookMs"`
}

// RefreshEvent records a live re-validation of a POI record
type RefreshEvent struct {
	BaseEvent
	POIID   string `json:"poiId"`
	Changed bool   `json:"changed"`
}
