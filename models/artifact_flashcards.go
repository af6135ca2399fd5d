package models

import "encoding/json"

// Flashcard is a canonical question/answer card.
type Flashcard struct {
	Front string
	Back  string
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts q|question and
// a|answer.
func (c *Flashcard) UnmarshalJSON(b []byte) error {
	var wire struct {
		Q        json.RawMessage `json:"q"`
		Question json.RawMessage `json:"question"`
		A        json.RawMessage `json:"a"`
		Answer   json.RawMessage `json:"answer"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*c = Flashcard{
		Front: firstText(wire.Q, wire.Question),
		Back:  firstText(wire.A, wire.Answer),
	}
	return nil
}

// FlashcardArtifact is the generated flashcard deck for one document.
type FlashcardArtifact struct {
	Cards []Flashcard
}

// UnmarshalJSON implements [json.Unmarshaler]. A missing deck decodes to an
// empty one.
func (a *FlashcardArtifact) UnmarshalJSON(b []byte) error {
	var wire struct {
		Flashcards json.RawMessage `json:"flashcards_json"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	a.Cards = []Flashcard{}
	rawCards, _ := decodeList(wire.Flashcards)
	for _, raw := range rawCards {
		var c Flashcard
		if err := json.Unmarshal(raw, &c); err != nil {
			continue
		}
		a.Cards = append(a.Cards, c)
	}
	return nil
}
