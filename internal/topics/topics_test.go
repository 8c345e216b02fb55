package topics

import (
	"strings"
	"testing"
)

func TestCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestAll_SixTopicsInSegmentOrder(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 topics, got %d", len(all))
	}
	for i, tp := range all {
		if tp.Segment != i+1 {
			t.Errorf("topic %s: segment %d, want %d", tp.ID, tp.Segment, i+1)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "mutated"
	got, _ := Get(all[0].ID)
	if got.Title == "mutated" {
		t.Error("All() leaked internal slice")
	}
}

func TestGet(t *testing.T) {
	tp, err := Get(Areas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp.CoinsReward != 80 {
		t.Errorf("areas reward = %d, want 80", tp.CoinsReward)
	}
	if !strings.Contains(tp.Reference.Formula, "(a + c) / 2") {
		t.Errorf("unexpected formula %q", tp.Reference.Formula)
	}

	if _, err := Get("u99"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"", IDs()},
		{"cylinder", []string{Volumes}},
		{"SIMILAR", []string{Scaling}},
		{"angle", []string{Angles}},
		{"nothing-matches", nil},
	}
	for _, tt := range tests {
		got := Search(tt.term)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) returned %d topics, want %d", tt.term, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %s, want %s", tt.term, i, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestByGroup(t *testing.T) {
	total := 0
	for _, g := range AllGroups() {
		for _, tp := range ByGroup(g) {
			if tp.Group != g {
				t.Errorf("topic %s in group %s, listed under %s", tp.ID, tp.Group, g)
			}
			total++
		}
	}
	if total != len(All()) {
		t.Errorf("groups cover %d topics, want %d", total, len(All()))
	}
}

func TestValidateTopics_DetectsProblems(t *testing.T) {
	bad := []Topic{
		{ID: "x", Segment: 1, Title: "X", CoinsReward: 10, Reference: ReferenceSheet{Terms: []string{"a"}}},
		{ID: "x", Segment: 1, Title: "", CoinsReward: 0},
	}
	err := validateTopics(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duplicate topic ID", "reuses segment", "no title", "non-positive", "empty reference"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%s", want, err)
		}
	}
}
