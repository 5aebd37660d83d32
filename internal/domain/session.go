package domain

// Step is the current stage of a reading session. Steps only move forward;
// the sole way back is discarding the session.
type Step string

const (
	StepAskQuestion Step = "ask-question"
	StepShuffle     Step = "shuffle"
	StepCut         Step = "cut"
	StepDraw        Step = "draw"
	StepReveal      Step = "reveal"
	StepInterpret   Step = "interpret"
)

// Session is one active reading: the chosen spread, the deck being worked,
// the cards drawn so far and the current step. A session exists from spread
// selection until it is saved or cancelled.
type Session struct {
	Spread   SpreadConfig `json:"spread"`
	Question string       `json:"question,omitempty"`
	Deck     Deck         `json:"deck"`
	Drawn    []DrawnCard  `json:"drawn"`
	Step     Step         `json:"step"`
}

// NewSession starts a reading with the given spread. The deck is dealt from
// the catalog with an automatic initial randomization so a deck exists
// immediately; the user's ritual shuffle comes later.
func NewSession(spread SpreadConfig, question string, catalog []Card, rng RNG) *Session {
	return &Session{
		Spread:   spread,
		Question: question,
		Deck:     NewDeck(catalog, rng),
		Step:     StepAskQuestion,
	}
}

// SetQuestion replaces the question. Allowed at any point before save.
func (s *Session) SetQuestion(question string) {
	s.Question = question
}

// Shuffle performs the user-invoked reshuffle and advances to the cut step.
func (s *Session) Shuffle(rng RNG) OpOutcome {
	s.Deck.Shuffle(rng)
	s.Step = StepCut
	return OpApplied
}

// Cut cuts the deck at the given depth and advances to the draw step.
// Ignored until the deck has been shuffled.
func (s *Session) Cut(position int) OpOutcome {
	outcome := s.Deck.CutAt(position)
	if outcome.Applied() {
		s.Step = StepDraw
	}
	return outcome
}

// Draw takes one card into the next spread position, rolling its
// orientation. An explicit cardID picks that card from the remaining deck,
// falling back to the top card when it does not match. The second return is
// false when the deck is exhausted. Drawing the final card of the spread
// advances the step to reveal.
func (s *Session) Draw(cardID string, rng RNG) (DrawnCard, bool) {
	card, ok := s.Deck.Draw(cardID)
	if !ok {
		return DrawnCard{}, false
	}

	drawn := DrawnCard{
		Card:           card,
		Orientation:    rollOrientation(rng),
		SpreadPosition: len(s.Drawn),
	}
	s.Drawn = append(s.Drawn, drawn)

	if len(s.Drawn) >= s.Spread.CardCount {
		s.Step = StepReveal
	} else {
		s.Step = StepDraw
	}
	return drawn, true
}

// DrawAll draws until the spread is full, returning the cards drawn by this
// call.
func (s *Session) DrawAll(rng RNG) []DrawnCard {
	var drawn []DrawnCard
	for len(s.Drawn) < s.Spread.CardCount {
		dc, ok := s.Draw("", rng)
		if !ok {
			break
		}
		drawn = append(drawn, dc)
	}
	return drawn
}

// Reveal advances from reveal to interpret once all cards are on the table.
// It exists so the presentation layer can stagger its reveal animation; the
// engine holds no other data behind it.
func (s *Session) Reveal() OpOutcome {
	if len(s.Drawn) == 0 || s.Step != StepReveal {
		return OpIgnored
	}
	s.Step = StepInterpret
	return OpApplied
}

// Complete reports whether every spread position has a card.
func (s *Session) Complete() bool {
	return len(s.Drawn) >= s.Spread.CardCount
}
