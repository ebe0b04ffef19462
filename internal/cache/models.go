package cache

import "time"

// Article is the pipeline's central record: one normalized feed item.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PubDate     string    `json:"pubDate"`
	Published   time.Time `json:"published"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`

	// IsFavorite is overlaid after the pipeline returns; it is never part
	// of the cached representation's meaning and is recomputed on load.
	IsFavorite bool `json:"isFavorite"`
}

// Entry is the single cached article collection with its validity window.
type Entry struct {
	Articles   []Article `json:"articles"`
	CapturedAt time.Time `json:"capturedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
