package domain

import "fmt"

// SpreadType identifies one of the eight supported spread layouts.
type SpreadType string

const (
	SpreadSingle                   SpreadType = "single"
	SpreadTwoChoices               SpreadType = "two-choices"
	SpreadPastPresentFuture        SpreadType = "past-present-future"
	SpreadSituationChallengeAdvice SpreadType = "situation-challenge-advice"
	SpreadHorseshoe                SpreadType = "horseshoe"
	SpreadChakra                   SpreadType = "chakra"
	SpreadCelticCross              SpreadType = "celtic-cross"
	SpreadAstrological             SpreadType = "astrological"
)

// Difficulty is a presentation-only tier; the engine never branches on it.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// SpreadPosition names one slot of a spread. X, Y and Rotation are layout
// hints for the presentation layer; the engine only passes them through.
type SpreadPosition struct {
	Index       int     `json:"index"`
	Label       string  `json:"label"`
	LabelThai   string  `json:"label_thai"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Rotation    float64 `json:"rotation,omitempty"`
}

// SpreadConfig describes a spread layout: how many cards are drawn and what
// each position means. CardCount always equals len(Positions).
type SpreadConfig struct {
	Type            SpreadType       `json:"type"`
	Name            string           `json:"name"`
	NameThai        string           `json:"name_thai"`
	Description     string           `json:"description"`
	DescriptionThai string           `json:"description_thai"`
	CardCount       int              `json:"card_count"`
	Difficulty      Difficulty       `json:"difficulty"`
	Icon            string           `json:"icon,omitempty"`
	Positions       []SpreadPosition `json:"positions"`
}

// SpreadByType looks up a spread configuration by its type tag.
func SpreadByType(t SpreadType) (SpreadConfig, bool) {
	for _, s := range spreadCatalog {
		if s.Type == t {
			return s, true
		}
	}
	return SpreadConfig{}, false
}

// Spreads returns all spread configurations in catalog order.
func Spreads() []SpreadConfig {
	out := make([]SpreadConfig, len(spreadCatalog))
	copy(out, spreadCatalog)
	return out
}

// A card-count/position mismatch is a data-entry bug; fail loudly at start.
func init() {
	for _, s := range spreadCatalog {
		if s.CardCount != len(s.Positions) {
			panic(fmt.Sprintf("spread %s: card count %d != %d positions", s.Type, s.CardCount, len(s.Positions)))
		}
	}
}
