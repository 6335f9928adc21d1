// Package diary defines the diary entry model shared by the store, the
// derived home screen state and the UIs.
package diary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/oneframe/pkg/calendar"
)

// ErrNoImage is returned by Validate when an entry has no image reference.
var ErrNoImage = errors.New("diary: image uri required")

// Entry is one day's record: a photo, how the day felt and a few words.
type Entry struct {
	ID        int64   `json:"id"`
	CreatedAt int64   `json:"createdAt"`
	ImageURI  string  `json:"imageUri"`
	Emotion   Emotion `json:"emotion,omitempty"`
	Title     string  `json:"title,omitempty"`
	Content   string  `json:"content,omitempty"`
}

// New creates an unsaved entry stamped at created.
func New(created time.Time, imageURI string, emotion Emotion) *Entry {
	return &Entry{
		CreatedAt: created.UnixMilli(),
		ImageURI:  imageURI,
		Emotion:   emotion,
	}
}

// Created returns the creation timestamp as a time.Time in UTC.
func (e *Entry) Created() time.Time {
	return time.UnixMilli(e.CreatedAt).UTC()
}

// Date returns the calendar date the entry belongs to.
func (e *Entry) Date() (calendar.Date, error) {
	return calendar.FromEpochMillis(e.CreatedAt)
}

// Label is the short text shown for the entry in lists and cards.
func (e *Entry) Label() string {
	if title := strings.TrimSpace(e.Title); title != "" {
		return title
	}
	if content := strings.TrimSpace(e.Content); content != "" {
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			content = content[:i]
		}
		return content
	}
	return "Untitled"
}

// Validate checks that the entry can be persisted.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.ImageURI) == "" {
		return ErrNoImage
	}
	if _, err := e.Date(); err != nil {
		return fmt.Errorf("diary: created at %d: %w", e.CreatedAt, err)
	}
	return nil
}

// Clone returns a copy that can be mutated independently.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

// String renders a single line summary.
func (e *Entry) String() string {
	date := "????-??-??"
	if d, err := e.Date(); err == nil {
		date = d.String()
	}
	return fmt.Sprintf("#%d %s %s %s", e.ID, date, e.Emotion.Label(), e.Label())
}
