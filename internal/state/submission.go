package state

import "strings"

// SubmissionPhase is the lifecycle stage of one submission attempt.
type SubmissionPhase int

const (
	SubmissionIdle SubmissionPhase = iota
	SubmissionSubmitting
	SubmissionQueued
	SubmissionFailed
)

func (p SubmissionPhase) String() string {
	switch p {
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionQueued:
		return "queued"
	case SubmissionFailed:
		return "failed"
	default:
		return "idle"
	}
}

// SubmissionKind tells which source is being submitted.
type SubmissionKind int

const (
	SubmissionPDF SubmissionKind = iota + 1
	SubmissionYoutube
)

// Status lines shown while and after submitting.
const (
	StatusUploadingPDF   = "Uploading and processing..."
	StatusTranscribingYT = "Downloading and transcribing..."
	StatusQueued         = "Queued. Generating notes, quizzes, flashcards..."
	StatusGenericError   = "Error"
)

// Submission tracks a single submit attempt:
//
//	Idle -> Submitting -> Queued
//	Idle -> Submitting -> Failed
//
// Queued and Failed are restartable; a new Begin resets the attempt.
type Submission struct {
	phase  SubmissionPhase
	kind   SubmissionKind
	input  string
	status string
}

// BeginPDF starts an upload of the file at path. It reports whether a
// request must be issued: a blank path, or an attempt already in flight,
// leaves the state untouched and returns false.
func (s *Submission) BeginPDF(path string) bool {
	return s.begin(SubmissionPDF, path, StatusUploadingPDF)
}

// BeginYoutube starts processing of a YouTube link. Same gating as BeginPDF.
func (s *Submission) BeginYoutube(url string) bool {
	return s.begin(SubmissionYoutube, url, StatusTranscribingYT)
}

func (s *Submission) begin(kind SubmissionKind, input, status string) bool {
	input = strings.TrimSpace(input)
	if input == "" || s.phase == SubmissionSubmitting {
		return false
	}

	*s = Submission{
		phase:  SubmissionSubmitting,
		kind:   kind,
		input:  input,
		status: status,
	}
	return true
}

// Succeed moves a running attempt to Queued. It reports whether the caller
// should navigate to the document list.
func (s *Submission) Succeed() bool {
	if s.phase != SubmissionSubmitting {
		return false
	}
	s.phase = SubmissionQueued
	s.status = StatusQueued
	return true
}

// Fail moves a running attempt to Failed with msg as the status. An empty
// msg becomes [StatusGenericError].
func (s *Submission) Fail(msg string) {
	if s.phase != SubmissionSubmitting {
		return
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = StatusGenericError
	}
	s.phase = SubmissionFailed
	s.status = msg
}

func (s Submission) Phase() SubmissionPhase { return s.phase }

func (s Submission) Kind() SubmissionKind { return s.kind }

// Input is the trimmed path or URL of the current attempt.
func (s Submission) Input() string { return s.input }

func (s Submission) Status() string { return s.status }

// Busy reports whether a request is in flight.
func (s Submission) Busy() bool { return s.phase == SubmissionSubmitting }
