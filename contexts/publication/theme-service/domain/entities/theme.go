package entities

import "time"

// Theme is a topic users subscribe to and articles are filed under. The
// subscriber set has set semantics: a user appears at most once.
type Theme struct {
	ThemeID       string
	Title         string
	Description   string
	SubscriberIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Theme) HasSubscriber(userID string) bool {
	for _, id := range t.SubscriberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
