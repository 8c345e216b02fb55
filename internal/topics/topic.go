package topics

// Group is the curriculum group a topic belongs to.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
	GroupC Group = "C"
)

// AllGroups returns all groups in display order.
func AllGroups() []Group {
	return []Group{GroupA, GroupB, GroupC}
}

// GroupDisplayName returns a human-readable name for a group.
func GroupDisplayName(g Group) string {
	switch g {
	case GroupA:
		return "Shapes & Relations"
	case GroupB:
		return "Measuring & Calculating"
	case GroupC:
		return "Modelling"
	default:
		return string(g)
	}
}

// Difficulty is the coarse difficulty label shown with a topic.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Label returns the display label for a difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ReferenceSheet is the cheat sheet shown beside a quest unless the
// no-cheat-sheet modifier is active.
type ReferenceSheet struct {
	Title   string
	Formula string
	Terms   []string
}

// Topic is one of the six geometry subject areas.
type Topic struct {
	ID           string
	Segment      int
	Group        Group
	Category     string
	Title        string
	Description  string
	DetailedInfo string
	Examples     []string
	Keywords     []string
	Difficulty   Difficulty
	CoinsReward  int
	Reference    ReferenceSheet
}
