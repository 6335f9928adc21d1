package emotion

import (
	"math"
	"testing"

	"tableflip.dev/oneframe/pkg/diary"
)

func entries(emotions ...diary.Emotion) []*diary.Entry {
	out := make([]*diary.Entry, 0, len(emotions))
	for i, em := range emotions {
		out = append(out, &diary.Entry{ID: int64(i + 1), Emotion: em})
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	for _, in := range [][]*diary.Entry{nil, {}, entries("", "")} {
		got := Aggregate(in)
		if got == nil {
			t.Fatalf("expected non-nil result")
		}
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %v", got)
		}
	}
}

func TestAggregateCanonicalOrder(t *testing.T) {
	in := entries(diary.EmotionTired, diary.EmotionHappy, diary.EmotionTired, diary.EmotionSad, "", diary.EmotionHappy, diary.EmotionTired)
	got := Aggregate(in)
	want := []Summary{
		{Emotion: diary.EmotionHappy, Count: 2},
		{Emotion: diary.EmotionSad, Count: 1},
		{Emotion: diary.EmotionTired, Count: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d summaries, got %v", len(want), got)
	}
	for i := range want {
		if got[i].Emotion != want[i].Emotion || got[i].Count != want[i].Count {
			t.Fatalf("summary %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	sum := 0.0
	for _, s := range got {
		sum += s.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("expected percentages to sum to 100, got %f", sum)
	}
	if Total(got) != 6 {
		t.Fatalf("expected total 6, got %d", Total(got))
	}
}

func TestAggregateUnknownFirstSeen(t *testing.T) {
	got := Aggregate(entries("bored", diary.EmotionCalm, "proud", "bored"))
	order := []diary.Emotion{diary.EmotionCalm, "bored", "proud"}
	if len(got) != len(order) {
		t.Fatalf("unexpected summaries %v", got)
	}
	for i, em := range order {
		if got[i].Emotion != em {
			t.Fatalf("position %d: expected %s, got %s", i, em, got[i].Emotion)
		}
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	a := Aggregate(entries(diary.EmotionSad, diary.EmotionCalm, diary.EmotionSad))
	b := Aggregate(entries(diary.EmotionCalm, diary.EmotionSad, diary.EmotionSad))
	if len(a) != len(b) {
		t.Fatalf("length mismatch %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("mismatch at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDominant(t *testing.T) {
	if _, ok := Dominant(nil); ok {
		t.Fatalf("expected no dominant emotion for empty input")
	}
	s, ok := Dominant(Aggregate(entries(diary.EmotionSad, diary.EmotionHappy)))
	if !ok || s.Emotion != diary.EmotionHappy {
		t.Fatalf("expected happy to win the tie, got %+v", s)
	}
}
