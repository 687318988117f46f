// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package history keeps a bounded, recallable log of entered commands.
package history

import "errors"

var (
	// ErrInvalidSize is returned by New for a non-positive limit.
	ErrInvalidSize = errors.New("history: limits must be positive")

	// ErrTooLarge is returned by Push for an entry that alone exceeds the
	// byte budget. The entry is not stored.
	ErrTooLarge = errors.New("history: entry exceeds byte budget")
)

// Queue is a FIFO of strings bounded by an entry count and a total byte
// budget. Pushing past either limit evicts the oldest entries.
//
// A cursor supports shell-style recall with Prev and Next. It rests one
// past the newest entry after every Push and Reset.
//
// Queue is NOT safe for concurrent use.
type Queue struct {
	entries    []string
	size       int // total bytes held
	maxEntries int
	maxBytes   int
	cursor     int
}

// New creates an empty queue holding at most maxEntries strings and
// maxBytes bytes.
func New(maxEntries, maxBytes int) (*Queue, error) {
	if maxEntries <= 0 || maxBytes <= 0 {
		return nil, ErrInvalidSize
	}
	return &Queue{
		entries:    make([]string, 0, min(maxEntries, 64)),
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
	}, nil
}

// Push appends s. An s equal to the newest entry is not stored again.
func (q *Queue) Push(s string) error {
	defer q.Reset()

	if len(s) > q.maxBytes {
		return ErrTooLarge
	}
	if n := len(q.entries); n > 0 && q.entries[n-1] == s {
		return nil
	}

	q.entries = append(q.entries, s)
	q.size += len(s)
	for len(q.entries) > q.maxEntries || q.size > q.maxBytes {
		q.size -= len(q.entries[0])
		q.entries[0] = ""
		q.entries = q.entries[1:]
	}
	return nil
}

// Len returns the number of stored entries.
func (q *Queue) Len() int { return len(q.entries) }

// Bytes returns the total size of the stored entries.
func (q *Queue) Bytes() int { return q.size }

// At returns the i-th entry, oldest first.
func (q *Queue) At(i int) (string, bool) {
	if i < 0 || i >= len(q.entries) {
		return "", false
	}
	return q.entries[i], true
}

// Last returns the newest entry.
func (q *Queue) Last() (string, bool) {
	return q.At(len(q.entries) - 1)
}

// Entries returns a copy of the stored entries, oldest first.
func (q *Queue) Entries() []string {
	out := make([]string, len(q.entries))
	copy(out, q.entries)
	return out
}

// Prev moves the cursor one entry back and returns that entry.
// It reports false once the oldest entry has been passed.
func (q *Queue) Prev() (string, bool) {
	if q.cursor == 0 {
		return "", false
	}
	q.cursor--
	return q.entries[q.cursor], true
}

// Next moves the cursor one entry forward and returns that entry.
// It reports false when the cursor reaches the end.
func (q *Queue) Next() (string, bool) {
	if q.cursor >= len(q.entries)-1 {
		q.cursor = len(q.entries)
		return "", false
	}
	q.cursor++
	return q.entries[q.cursor], true
}

// Reset puts the cursor one past the newest entry.
func (q *Queue) Reset() { q.cursor = len(q.entries) }
