package topics

import "testing"

func TestCollapseAcronyms_RemovesInternalPeriods(t *testing.T) {
	got := CollapseAcronyms("he have a m.b.a. degree.")
	if got != "he have a mba degree." {
		t.Fatalf("expected acronym periods removed, got %q", got)
	}
}

func TestCollapseAcronyms_KeepsSentenceTerminators(t *testing.T) {
	// "e." at the end of an ordinary word is not an acronym run.
	got := CollapseAcronyms("one sentence. another one.")
	if got != "one sentence. another one." {
		t.Fatalf("expected terminators untouched, got %q", got)
	}
}

func TestCollapseAcronyms_UppercaseRun(t *testing.T) {
	got := CollapseAcronyms("the U.S.A. economy")
	if got != "the USA economy" {
		t.Fatalf("expected USA, got %q", got)
	}
}

func TestCollapseAcronyms_NoMatchUnchanged(t *testing.T) {
	in := "nothing to collapse here"
	if got := CollapseAcronyms(in); got != in {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}

func TestStripPunctuation_PreservesApostrophe(t *testing.T) {
	got := StripPunctuation("don't stop! it's fine, really.")
	if got != "don't stop it's fine really" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestStripPunctuation_CollapsesAndTrims(t *testing.T) {
	got := StripPunctuation("  a - b ... [c]  ")
	if got != "a b c" {
		t.Fatalf("expected single-spaced trimmed output, got %q", got)
	}
}

func TestStripPunctuation_Empty(t *testing.T) {
	if got := StripPunctuation("...!!!"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
