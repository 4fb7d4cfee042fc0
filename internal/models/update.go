package models

import "time"

// Badge labels accepted on an update. Union of the labels the feed clients render.
const (
	BadgeImportant    = "important"
	BadgeGeneral      = "general"
	BadgeInfo         = "info"
	BadgeWarning      = "warning"
	BadgeAnnouncement = "announcement"
	BadgeReminder     = "reminder"
)

// ValidBadge reports whether b is a known badge label.
func ValidBadge(b string) bool {
	switch b {
	case BadgeImportant, BadgeGeneral, BadgeInfo, BadgeWarning, BadgeAnnouncement, BadgeReminder:
		return true
	}
	return false
}

// Update is a single entry in the news feed.
type Update struct {
	ID        int       `json:"id"`
	Topic     string    `json:"topic"`
	Badge     string    `json:"badge"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
