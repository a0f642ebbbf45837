package topics

import "testing"

func TestTopN_DescendingWithStableTies(t *testing.T) {
	in := []rankedTopic{
		{topic: "first seen", score: 2},
		{topic: "second seen", score: 2},
		{topic: "winner", score: 5},
	}
	got := topN(in, 0)
	if got[0].topic != "winner" {
		t.Fatalf("expected highest score first, got %v", got)
	}
	if got[1].topic != "first seen" || got[2].topic != "second seen" {
		t.Fatalf("expected ties in first-seen order, got %v", got)
	}
}

func TestTopN_LimitBeyondCandidates(t *testing.T) {
	in := []rankedTopic{{topic: "only", score: 1}}
	got := topN(in, 10)
	if len(got) != 1 {
		t.Fatalf("expected all candidates when limit exceeds count, got %d", len(got))
	}
}

func TestTopN_Truncates(t *testing.T) {
	in := []rankedTopic{
		{topic: "a", score: 3},
		{topic: "b", score: 2},
		{topic: "c", score: 1},
	}
	got := topN(in, 2)
	if len(got) != 2 || got[0].topic != "a" || got[1].topic != "b" {
		t.Fatalf("unexpected truncation result %v", got)
	}
}
