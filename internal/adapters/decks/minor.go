package decks

import (
	"fmt"
	"strings"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

type suitInfo struct {
	suit     domain.Suit
	name     string
	nameThai string
	// kwUp/kwRev color each minor card with the suit's element.
	kwUp  string
	kwRev string
	// realmUp/realmRev finish the composed meaning sentences.
	realmUp  string
	realmRev string
	element  string
}

var suits = []suitInfo{
	{
		suit: domain.SuitWands, name: "Wands", nameThai: "ไม้เท้า",
		kwUp: "Passion", kwRev: "Burnout",
		realmUp:  "in creative work, ambition and drive",
		realmRev: "where enthusiasm has outrun direction",
		element:  "fire",
	},
	{
		suit: domain.SuitCups, name: "Cups", nameThai: "ถ้วย",
		kwUp: "Emotion", kwRev: "Emotional Distance",
		realmUp:  "in relationships, feeling and intuition",
		realmRev: "where the heart is asked to look again",
		element:  "water",
	},
	{
		suit: domain.SuitSwords, name: "Swords", nameThai: "ดาบ",
		kwUp: "Clarity", kwRev: "Harsh Truth",
		realmUp:  "in thought, truth and communication",
		realmRev: "where the mind cuts sharper than it should",
		element:  "air",
	},
	{
		suit: domain.SuitPentacles, name: "Pentacles", nameThai: "เหรียญ",
		kwUp: "Stability", kwRev: "Material Worry",
		realmUp:  "in work, money and the material world",
		realmRev: "where security asks for patience and care",
		element:  "earth",
	},
}

type rankInfo struct {
	number   int
	name     string
	nameThai string
	kwUp     []string
	kwRev    []string
	themeUp  string
	themeRev string
}

var ranks = []rankInfo{
	{1, "Ace", "เอซ", []string{"New Beginnings", "Potential"}, []string{"Missed Opportunity", "False Start"},
		"A seed of pure potential breaks ground", "An opening overlooked or begun on the wrong foot"},
	{2, "Two", "สอง", []string{"Balance", "Choice"}, []string{"Indecision", "Imbalance"},
		"Two paths ask to be weighed", "A choice avoided tips the scales"},
	{3, "Three", "สาม", []string{"Growth", "Collaboration"}, []string{"Delay", "Friction"},
		"First results appear through shared effort", "Progress stalls while the pieces misalign"},
	{4, "Four", "สี่", []string{"Foundation", "Rest"}, []string{"Stagnation", "Restlessness"},
		"A stable base invites consolidation", "Comfort hardens into standing still"},
	{5, "Five", "ห้า", []string{"Conflict", "Challenge"}, []string{"Avoidance", "Lingering Loss"},
		"Struggle tests what has been built", "A hard lesson resisted repeats itself"},
	{6, "Six", "หก", []string{"Harmony", "Recovery"}, []string{"Nostalgia", "Uneven Exchange"},
		"Balance returns and generosity flows", "Looking backward unsettles what was mended"},
	{7, "Seven", "เจ็ด", []string{"Assessment", "Perseverance"}, []string{"Doubt", "Shortcuts"},
		"Patience measures the long road", "Second-guessing undermines the climb"},
	{8, "Eight", "แปด", []string{"Movement", "Mastery"}, []string{"Haste", "Feeling Trapped"},
		"Momentum gathers toward skill and change", "Speed or constraint distorts the work"},
	{9, "Nine", "เก้า", []string{"Fruition", "Resilience"}, []string{"Anxiety", "Overextension"},
		"Effort nears its reward", "Worry shadows what is almost won"},
	{10, "Ten", "สิบ", []string{"Completion", "Legacy"}, []string{"Burden", "Unfinished Cycle"},
		"A cycle completes and its weight is known", "An ending carried longer than it asks"},
	{11, "Page", "เพจ", []string{"Curiosity", "Messages"}, []string{"Immaturity", "Mixed Signals"},
		"A student's eyes find news and beginnings", "Eagerness without grounding scatters the message"},
	{12, "Knight", "อัศวิน", []string{"Action", "Pursuit"}, []string{"Recklessness", "Stalled Quest"},
		"A champion rides hard toward the goal", "Drive overshoots or loses its way"},
	{13, "Queen", "ราชินี", []string{"Nurture", "Inner Mastery"}, []string{"Insecurity", "Smothering"},
		"Quiet command tends the realm from within", "Care turns inward as doubt or grips too tight"},
	{14, "King", "ราชา", []string{"Authority", "Maturity"}, []string{"Rigidity", "Misused Power"},
		"Seasoned command rules the element", "Control hardens or the crown sits heavy"},
}

// minorArcana composes the 56 minor cards from the rank and suit tables.
func minorArcana() []domain.Card {
	cards := make([]domain.Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			name := fmt.Sprintf("%s of %s", r.name, s.name)
			id := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
			cards = append(cards, domain.Card{
				ID:               id,
				Name:             name,
				NameThai:         r.nameThai + "แห่ง" + s.nameThai,
				Suit:             s.suit,
				Number:           r.number,
				Arcana:           domain.ArcanaMinor,
				ImageURL:         "/images/" + id + ".jpg",
				KeywordsUpright:  append(append([]string{}, r.kwUp...), s.kwUp),
				KeywordsReversed: append(append([]string{}, r.kwRev...), s.kwRev),
				MeaningUpright:   fmt.Sprintf("%s %s.", r.themeUp, s.realmUp),
				MeaningReversed:  fmt.Sprintf("%s %s.", r.themeRev, s.realmRev),
				Description:      fmt.Sprintf("The %s of the suit of %s, carrying the %s element %s.", strings.ToLower(r.name), strings.ToLower(s.name), s.element, s.realmUp),
			})
		}
	}
	return cards
}
