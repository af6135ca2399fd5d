// Package state holds the view-local state machines of the client: the
// document submission flow, quiz answer checking, and flashcard review.
//
// The types here are plain values without I/O. The terminal UI owns one
// instance per mounted page and drives it from its Update loop, which keeps
// every transition synchronous and directly testable.
package state
