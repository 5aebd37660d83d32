package domain

// DeckSize is the number of cards in a complete tarot deck.
const DeckSize = 78

// OpOutcome reports whether a deck or session operation took effect.
// Precondition failures are reported, not raised: callers are trusted UI
// code and a refused ritual step is not an error in this domain.
type OpOutcome string

const (
	OpApplied OpOutcome = "applied"
	OpIgnored OpOutcome = "ignored"
)

// Applied reports whether the operation took effect.
func (o OpOutcome) Applied() bool { return o == OpApplied }

// Deck is the working order of a physical deck during one reading session.
// Remaining is always Cards with the drawn cards removed, order preserved.
type Deck struct {
	Cards     []Card `json:"cards"`
	Remaining []Card `json:"remaining"`
	Shuffled  bool   `json:"shuffled"`
	Cut       bool   `json:"cut"`
}

// NewDeck builds a deck from the catalog with an initial automatic
// randomization. This is the session-creation shuffle, distinct from the
// user-invoked ritual Shuffle: it does not set the Shuffled gate.
func NewDeck(catalog []Card, rng RNG) Deck {
	shuffled := shuffleCards(truncate(catalog), rng)
	return Deck{
		Cards:     shuffled,
		Remaining: shuffled,
	}
}

// Shuffle replaces the working order with a fresh uniform permutation and
// opens the Shuffled gate. Safe to call at any point.
func (d *Deck) Shuffle(rng RNG) {
	shuffled := shuffleCards(truncate(d.Cards), rng)
	d.Cards = shuffled
	d.Remaining = shuffled
	d.Shuffled = true
}

// CutAt rotates the deck so cards from position onward come first. Cutting
// an unshuffled deck is meaningless and is ignored, as is an out-of-range
// position.
func (d *Deck) CutAt(position int) OpOutcome {
	if !d.Shuffled {
		return OpIgnored
	}
	cards := truncate(d.Cards)
	if position < 0 || position >= len(cards) {
		return OpIgnored
	}
	cut := make([]Card, 0, len(cards))
	cut = append(cut, cards[position:]...)
	cut = append(cut, cards[:position]...)
	d.Cards = cut
	d.Remaining = cut
	d.Cut = true
	return OpApplied
}

// Draw removes one card from the remaining sequence. With an empty cardID
// the first remaining card is taken; with a cardID that matches, that card
// is taken; with a cardID that matches nothing, the draw degrades to the
// first remaining card. The second return is false only when the deck is
// exhausted.
func (d *Deck) Draw(cardID string) (Card, bool) {
	if len(d.Remaining) == 0 {
		return Card{}, false
	}

	idx := 0
	if cardID != "" {
		for i, c := range d.Remaining {
			if c.ID == cardID {
				idx = i
				break
			}
		}
	}

	card := d.Remaining[idx]
	remaining := make([]Card, 0, len(d.Remaining)-1)
	remaining = append(remaining, d.Remaining[:idx]...)
	remaining = append(remaining, d.Remaining[idx+1:]...)
	d.Remaining = remaining
	return card, true
}

// truncate caps a card sequence at DeckSize entries. The catalog is
// validated at load, so this guard should never trim anything; it keeps a
// duplication bug upstream from inflating the deck mid-session.
func truncate(cards []Card) []Card {
	if len(cards) > DeckSize {
		return cards[:DeckSize]
	}
	return cards
}

// shuffleCards returns a uniform Fisher-Yates permutation of cards.
func shuffleCards(cards []Card, rng RNG) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// rollOrientation is an independent 50/50 upright/reversed roll.
func rollOrientation(rng RNG) Orientation {
	if rng.Intn(2) == 1 {
		return Reversed
	}
	return Upright
}
