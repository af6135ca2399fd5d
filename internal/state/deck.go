package state

import (
	"fmt"

	"github.com/MKhiriev/mindcraft-client/models"
)

// Face is the visible side of a flashcard.
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

func (f Face) String() string {
	if f == FaceBack {
		return "back"
	}
	return "front"
}

// Difficulty is the self-assessment given for a card. It only advances the
// deck; no schedule is kept.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the buttons in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Deck is the review cursor of one flashcard view.
type Deck struct {
	cards []models.Flashcard
	index int
	face  Face
}

// NewDeck starts at the first card, front side up.
func NewDeck(cards []models.Flashcard) *Deck {
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Index() int { return d.index }

func (d *Deck) Face() Face { return d.face }

// Flip toggles the visible side. The index does not change.
func (d *Deck) Flip() {
	if d.face == FaceFront {
		d.face = FaceBack
		return
	}
	d.face = FaceFront
}

// Mark advances to the next card, wrapping to the first, and turns it front
// side up. The difficulty is accepted and ignored.
func (d *Deck) Mark(_ Difficulty) {
	d.index = (d.index + 1) % max(1, len(d.cards))
	d.face = FaceFront
}

// Current returns the card under the cursor; ok is false for an empty deck.
func (d *Deck) Current() (card models.Flashcard, ok bool) {
	if d.index < 0 || d.index >= len(d.cards) {
		return models.Flashcard{}, false
	}
	return d.cards[d.index], true
}

// VisibleText is the text of the visible side of the current card.
func (d *Deck) VisibleText() string {
	card, ok := d.Current()
	if !ok {
		return ""
	}
	if d.face == FaceBack {
		return card.Back
	}
	return card.Front
}

// Header is "Card <index+1> / <n>".
func (d *Deck) Header() string {
	return fmt.Sprintf("Card %d / %d", d.index+1, len(d.cards))
}
