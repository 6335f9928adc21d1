package diary

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Emotion identifies how the author felt about the day.
type Emotion string

const (
	// EmotionHappy is a joyful day.
	EmotionHappy Emotion = "happy"
	// EmotionCalm is a peaceful, settled day.
	EmotionCalm Emotion = "calm"
	// EmotionExcited is an energetic, thrilled day.
	EmotionExcited Emotion = "excited"
	// EmotionSad is a down day.
	EmotionSad Emotion = "sad"
	// EmotionAngry is a frustrated day.
	EmotionAngry Emotion = "angry"
	// EmotionAnxious is a worried day.
	EmotionAnxious Emotion = "anxious"
	// EmotionTired is an exhausted day.
	EmotionTired Emotion = "tired"
)

// AllEmotions returns the known emotions in their canonical display order.
func AllEmotions() []Emotion {
	return []Emotion{
		EmotionHappy,
		EmotionCalm,
		EmotionExcited,
		EmotionSad,
		EmotionAngry,
		EmotionAnxious,
		EmotionTired,
	}
}

// Rank returns the canonical position of e, or -1 for emotions outside the
// known set.
func (e Emotion) Rank() int {
	for i, candidate := range AllEmotions() {
		if candidate == e {
			return i
		}
	}
	return -1
}

// Known reports whether e is one of the canonical emotions.
func (e Emotion) Known() bool {
	return e.Rank() >= 0
}

// Label is the capitalised display name.
func (e Emotion) Label() string {
	if e == "" {
		return ""
	}
	s := string(e)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ParseEmotion normalises raw and validates it against the known set.
func ParseEmotion(raw string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(raw)))
	if e == "" {
		return "", nil
	}
	if e.Known() {
		return e, nil
	}
	return e, fmt.Errorf("diary: unknown emotion %q", raw)
}
