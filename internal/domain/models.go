package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Orientation is the upright/reversed state of a drawn card. It decides
// which keyword and meaning set applies.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Suit groups cards into the major arcana or one of the four minor suits.
type Suit string

const (
	SuitMajor     Suit = "major"
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Arcana is the card class: 22 major cards, 56 minor cards.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Card is one entry of the 78-card catalog. Cards are defined once at
// startup and shared by reference; nothing mutates them.
type Card struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameThai         string   `json:"name_thai"`
	Suit             Suit     `json:"suit"`
	Number           int      `json:"number,omitempty"` // 1-14 for minor cards, 0 for major arcana
	Arcana           Arcana   `json:"arcana"`
	ImageURL         string   `json:"image_url"`
	KeywordsUpright  []string `json:"keywords_upright"`
	KeywordsReversed []string `json:"keywords_reversed"`
	MeaningUpright   string   `json:"meaning_upright"`
	MeaningReversed  string   `json:"meaning_reversed"`
	Description      string   `json:"description"`
}

// Keywords returns the keyword set matching the orientation.
func (c Card) Keywords(o Orientation) []string {
	if o == Reversed {
		return c.KeywordsReversed
	}
	return c.KeywordsUpright
}

// Meaning returns the meaning text matching the orientation.
func (c Card) Meaning(o Orientation) string {
	if o == Reversed {
		return c.MeaningReversed
	}
	return c.MeaningUpright
}

// DrawnCard binds a card to the orientation rolled at draw time and to the
// spread position it was drawn into (0-indexed, in spread-position order).
type DrawnCard struct {
	Card           Card        `json:"card"`
	Orientation    Orientation `json:"orientation"`
	SpreadPosition int         `json:"spread_position"`
}
