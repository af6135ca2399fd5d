package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesArtifact_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantText  string
		wantEmpty bool
	}{
		{name: "string notes", body: `{"notes_json":"# Title\nbody"}`, wantText: "# Title\nbody"},
		{name: "empty object", body: `{}`, wantEmpty: true},
		{name: "null notes", body: `{"notes_json":null}`, wantEmpty: true},
		{name: "blank notes", body: `{"notes_json":"   "}`, wantText: "   ", wantEmpty: true},
		{name: "object notes", body: `{"notes_json":{"a":1}}`, wantText: "{\n  \"a\": 1\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NotesArtifact
			require.NoError(t, json.Unmarshal([]byte(tt.body), &n))
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, n.Text)
			}
			assert.Equal(t, tt.wantEmpty, n.Empty())
		})
	}
}

func TestQuizArtifact_Unmarshal_FieldVariants(t *testing.T) {
	body := `{
		"mcqs_json": [
			{"question": "Q1", "options": ["a", "b"], "answer": "a", "explanation": "because"},
			{"prompt": "P2", "choices": [{"id": 1}, {"id": 2}], "answer": {"id": 2}},
			{"options": [], "choices": ["ignored"], "answer": "x"}
		],
		"tf_json": [
			{"statement": "S", "answer": "True", "reason": "r"},
			{"question": "Q", "answer": false}
		]
	}`

	var a QuizArtifact
	require.NoError(t, json.Unmarshal([]byte(body), &a))

	require.Len(t, a.MCQs, 3)
	assert.Equal(t, "Q1", a.MCQs[0].Question)
	assert.Equal(t, "because", a.MCQs[0].Explanation)
	require.Len(t, a.MCQs[0].Choices, 2)
	assert.Equal(t, "a", a.MCQs[0].Choices[0].Text)
	assert.True(t, a.MCQs[0].IsCorrect(0))
	assert.False(t, a.MCQs[0].IsCorrect(1))

	assert.Equal(t, "P2", a.MCQs[1].Question)
	require.Len(t, a.MCQs[1].Choices, 2)
	assert.Equal(t, `{"id":1}`, a.MCQs[1].Choices[0].Text)
	assert.False(t, a.MCQs[1].IsCorrect(0))
	assert.True(t, a.MCQs[1].IsCorrect(1))

	// present-but-empty options win over choices
	assert.Empty(t, a.MCQs[2].Choices)
	assert.Empty(t, a.MCQs[2].Question)

	require.Len(t, a.TrueFalses, 2)
	assert.Equal(t, "S", a.TrueFalses[0].Statement)
	assert.Equal(t, "r", a.TrueFalses[0].Reason)
	assert.True(t, a.TrueFalses[0].IsCorrect(TFTrue))
	assert.False(t, a.TrueFalses[0].IsCorrect(TFFalse))

	assert.Equal(t, "Q", a.TrueFalses[1].Statement)
	assert.Equal(t, "false", a.TrueFalses[1].Answer)
	assert.True(t, a.TrueFalses[1].IsCorrect(TFFalse))
}

func TestQuizArtifact_Unmarshal_MissingSequences(t *testing.T) {
	var a QuizArtifact
	require.NoError(t, json.Unmarshal([]byte(`{}`), &a))

	assert.NotNil(t, a.MCQs)
	assert.NotNil(t, a.TrueFalses)
	assert.Empty(t, a.MCQs)
	assert.Empty(t, a.TrueFalses)
}

func TestMCQ_IsCorrect_StructuralComparison(t *testing.T) {
	var q MCQ
	require.NoError(t, json.Unmarshal([]byte(`{"options":[{"b":2,"a":1}, "1", 1],"answer":{"a":1,"b":2}}`), &q))

	assert.True(t, q.IsCorrect(0), "key order must not matter")
	assert.False(t, q.IsCorrect(1))
	assert.False(t, q.IsCorrect(2))
	assert.False(t, q.IsCorrect(-1))
	assert.False(t, q.IsCorrect(3))
}

func TestMCQ_IsCorrect_NoAnswer(t *testing.T) {
	var q MCQ
	require.NoError(t, json.Unmarshal([]byte(`{"options":["a"]}`), &q))
	assert.False(t, q.IsCorrect(0))
}

func TestFlashcardArtifact_Unmarshal(t *testing.T) {
	var a FlashcardArtifact
	require.NoError(t, json.Unmarshal([]byte(`{"flashcards_json":[{"q":"F1","a":"B1"},{"question":"F2","answer":"B2"}]}`), &a))

	require.Len(t, a.Cards, 2)
	assert.Equal(t, Flashcard{Front: "F1", Back: "B1"}, a.Cards[0])
	assert.Equal(t, Flashcard{Front: "F2", Back: "B2"}, a.Cards[1])

	var empty FlashcardArtifact
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.NotNil(t, empty.Cards)
	assert.Empty(t, empty.Cards)
}

func TestDocumentID_Unmarshal(t *testing.T) {
	var docs []Document
	require.NoError(t, json.Unmarshal([]byte(`[{"id":42,"title":"Numbers","type":"pdf"},{"id":"abc","title":"Strings","type":"youtube"}]`), &docs))

	require.Len(t, docs, 2)
	assert.Equal(t, DocumentID("42"), docs[0].ID)
	assert.Equal(t, DocumentTypePDF, docs[0].Type)
	assert.Equal(t, DocumentID("abc"), docs[1].ID)
	assert.Equal(t, DocumentTypeYoutube, docs[1].Type)
}

func TestSearchResult_Pretty(t *testing.T) {
	r := SearchResult{Raw: json.RawMessage(`{"hits":[1,2]}`)}
	assert.Equal(t, "{\n  \"hits\": [\n    1,\n    2\n  ]\n}", r.Pretty())

	broken := SearchResult{Raw: json.RawMessage(`not json`)}
	assert.Equal(t, "not json", broken.Pretty())
}
