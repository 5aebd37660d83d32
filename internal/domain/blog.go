package domain

import "time"

// BlogCategory classifies posts on the public blog.
type BlogCategory string

const (
	CategoryUniverseSecrets     BlogCategory = "universe-secrets"
	CategoryUnsolvedMysteries   BlogCategory = "unsolved-mysteries"
	CategoryEnergyManifestation BlogCategory = "energy-manifestation"
)

// BlogPost is one published article. WatcherInsight is the short oracle
// aside shown under the post.
type BlogPost struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Excerpt        string       `json:"excerpt"`
	Content        string       `json:"content"`
	Category       BlogCategory `json:"category"`
	WatcherInsight string       `json:"watcher_insight,omitempty"`
	ImageURL       string       `json:"image_url,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}
