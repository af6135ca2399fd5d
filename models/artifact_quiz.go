// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Choice is one selectable MCQ option. Options arrive either as plain strings
// or as arbitrary JSON objects; Raw keeps the original value for correctness
// checks and Text is what gets displayed.
type Choice struct {
	Text string
	Raw  json.RawMessage
}

// MCQ is a canonical multiple-choice question.
type MCQ struct {
	Question    string
	Choices     []Choice
	Answer      json.RawMessage
	Explanation string
}

// IsCorrect reports whether the choice at index i structurally equals the
// question's answer. Out-of-range indexes and missing answers are never
// correct.
func (q MCQ) IsCorrect(i int) bool {
	if i < 0 || i >= len(q.Choices) {
		return false
	}

	answer, ok := canonicalJSON(q.Answer)
	if !ok {
		return false
	}
	choice, ok := canonicalJSON(q.Choices[i].Raw)
	if !ok {
		return false
	}
	return bytes.Equal(answer, choice)
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts question|prompt and
// options|choices.
func (q *MCQ) UnmarshalJSON(b []byte) error {
	var wire struct {
		Question    json.RawMessage `json:"question"`
		Prompt      json.RawMessage `json:"prompt"`
		Options     json.RawMessage `json:"options"`
		Choices     json.RawMessage `json:"choices"`
		Answer      json.RawMessage `json:"answer"`
		Explanation json.RawMessage `json:"explanation"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	rawChoices, ok := decodeList(wire.Options)
	if !ok {
		rawChoices, _ = decodeList(wire.Choices)
	}

	choices := make([]Choice, 0, len(rawChoices))
	for _, raw := range rawChoices {
		choices = append(choices, Choice{Text: rawText(raw), Raw: raw})
	}

	*q = MCQ{
		Question:    firstText(wire.Question, wire.Prompt),
		Choices:     choices,
		Answer:      wire.Answer,
		Explanation: rawText(wire.Explanation),
	}
	return nil
}

// TFLabel is one of the two fixed true/false answer labels.
type TFLabel string

const (
	TFTrue  TFLabel = "True"
	TFFalse TFLabel = "False"
)

// TFLabels lists the labels in display order.
var TFLabels = []TFLabel{TFTrue, TFFalse}

// TrueFalse is a canonical true/false statement.
type TrueFalse struct {
	Statement string
	// Answer is the textual answer as sent by the server; booleans are
	// carried as "true"/"false".
	Answer string
	Reason string
}

// IsCorrect compares label with the answer, ignoring case.
func (q TrueFalse) IsCorrect(label TFLabel) bool {
	return strings.EqualFold(string(label), q.Answer)
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts statement|question
// and a string or boolean answer.
func (q *TrueFalse) UnmarshalJSON(b []byte) error {
	var wire struct {
		Statement json.RawMessage `json:"statement"`
		Question  json.RawMessage `json:"question"`
		Answer    json.RawMessage `json:"answer"`
		Reason    json.RawMessage `json:"reason"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*q = TrueFalse{
		Statement: firstText(wire.Statement, wire.Question),
		Answer:    rawText(wire.Answer),
		Reason:    rawText(wire.Reason),
	}
	return nil
}

// QuizArtifact is the generated quiz for one document.
type QuizArtifact struct {
	MCQs       []MCQ
	TrueFalses []TrueFalse
}

// UnmarshalJSON implements [json.Unmarshaler]. Missing sequences decode to
// empty ones; elements that cannot be decoded are skipped.
func (a *QuizArtifact) UnmarshalJSON(b []byte) error {
	var wire struct {
		MCQs json.RawMessage `json:"mcqs_json"`
		TF   json.RawMessage `json:"tf_json"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*a = QuizArtifact{MCQs: []MCQ{}, TrueFalses: []TrueFalse{}}

	rawMCQs, _ := decodeList(wire.MCQs)
	for _, raw := range rawMCQs {
		var q MCQ
		if err := json.Unmarshal(raw, &q); err != nil {
			continue
		}
		a.MCQs = append(a.MCQs, q)
	}

	rawTF, _ := decodeList(wire.TF)
	for _, raw := range rawTF {
		var q TrueFalse
		if err := json.Unmarshal(raw, &q); err != nil {
			continue
		}
		a.TrueFalses = append(a.TrueFalses, q)
	}

	return nil
}
