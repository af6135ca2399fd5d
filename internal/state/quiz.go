package state

import (
	"fmt"
	"maps"

	"github.com/MKhiriev/mindcraft-client/models"
)

// QuestionKey identifies a question for the lifetime of a quiz view:
// "mcq-<i>" or "tf-<i>", where i is the position in its sequence.
type QuestionKey string

func MCQKey(i int) QuestionKey { return QuestionKey(fmt.Sprintf("mcq-%d", i)) }

func TFKey(i int) QuestionKey { return QuestionKey(fmt.Sprintf("tf-%d", i)) }

// AnswerRecord maps answered questions to whether the last answer was
// correct. It lives only as long as the quiz view.
type AnswerRecord map[QuestionKey]bool

// Quiz is the answer-checking state of one quiz view.
type Quiz struct {
	mcqs    []models.MCQ
	tfs     []models.TrueFalse
	answers AnswerRecord
}

// NewQuiz builds an unanswered quiz. Nil sequences are treated as empty.
func NewQuiz(artifact models.QuizArtifact) *Quiz {
	q := &Quiz{
		mcqs:    artifact.MCQs,
		tfs:     artifact.TrueFalses,
		answers: AnswerRecord{},
	}
	if q.mcqs == nil {
		q.mcqs = []models.MCQ{}
	}
	if q.tfs == nil {
		q.tfs = []models.TrueFalse{}
	}
	return q
}

func (q *Quiz) MCQs() []models.MCQ { return q.mcqs }

func (q *Quiz) TrueFalses() []models.TrueFalse { return q.tfs }

// Len is the total number of questions.
func (q *Quiz) Len() int { return len(q.mcqs) + len(q.tfs) }

// AnswerMCQ records choosing option of multiple-choice question i. A repeated
// answer overwrites the previous one. ok is false for out-of-range indexes,
// in which case nothing is recorded.
func (q *Quiz) AnswerMCQ(i, option int) (key QuestionKey, correct bool, ok bool) {
	if i < 0 || i >= len(q.mcqs) || option < 0 || option >= len(q.mcqs[i].Choices) {
		return "", false, false
	}
	key = MCQKey(i)
	correct = q.mcqs[i].IsCorrect(option)
	q.answers[key] = correct
	return key, correct, true
}

// AnswerTF records choosing label for true/false statement i. The label is
// compared with the expected answer case-insensitively.
func (q *Quiz) AnswerTF(i int, label models.TFLabel) (key QuestionKey, correct bool, ok bool) {
	if i < 0 || i >= len(q.tfs) {
		return "", false, false
	}
	key = TFKey(i)
	correct = q.tfs[i].IsCorrect(label)
	q.answers[key] = correct
	return key, correct, true
}

// Recorded returns the stored correctness for key and whether it exists.
func (q *Quiz) Recorded(key QuestionKey) (correct bool, answered bool) {
	correct, answered = q.answers[key]
	return correct, answered
}

// Answers returns a copy of the answer record.
func (q *Quiz) Answers() AnswerRecord {
	return maps.Clone(q.answers)
}

// MCQOptionHighlighted reports whether option of question i is drawn as
// highlighted. The rule compares the recorded outcome with the option's own
// correctness, not with the option that was clicked: after a correct answer
// the right option lights up, after a wrong answer every wrong option does.
func (q *Quiz) MCQOptionHighlighted(i, option int) bool {
	if i < 0 || i >= len(q.mcqs) {
		return false
	}
	recorded, answered := q.answers[MCQKey(i)]
	if !answered {
		return false
	}
	return q.mcqs[i].IsCorrect(option) == recorded
}

// TFLabelHighlighted applies the same rule as MCQOptionHighlighted to the
// True/False labels of statement i.
func (q *Quiz) TFLabelHighlighted(i int, label models.TFLabel) bool {
	if i < 0 || i >= len(q.tfs) {
		return false
	}
	recorded, answered := q.answers[TFKey(i)]
	if !answered {
		return false
	}
	return q.tfs[i].IsCorrect(label) == recorded
}

// MCQTitle is the question text or "Q<n>" when it is missing.
func (q *Quiz) MCQTitle(i int) string {
	if i >= 0 && i < len(q.mcqs) && q.mcqs[i].Question != "" {
		return q.mcqs[i].Question
	}
	return fmt.Sprintf("Q%d", i+1)
}

// TFTitle is the statement text or "Statement <n>" when it is missing.
func (q *Quiz) TFTitle(i int) string {
	if i >= 0 && i < len(q.tfs) && q.tfs[i].Statement != "" {
		return q.tfs[i].Statement
	}
	return fmt.Sprintf("Statement %d", i+1)
}
