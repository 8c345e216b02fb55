package battle

// DefaultSkill is the skill assumed for opponents missing from a table.
const DefaultSkill = 3

// Opponent is a synthetic battle opponent.
type Opponent struct {
	ID     string
	Name   string
	Avatar string
	XP     int
}

// DefaultOpponents returns the built-in bots in ascending strength.
func DefaultOpponents() []Opponent {
	return []Opponent{
		{ID: "bot1", Name: "Lukas_9b", Avatar: "🦉", XP: 450},
		{ID: "bot2", Name: "Sarah.Math", Avatar: "🥷", XP: 820},
		{ID: "bot3", Name: "MathePro_X", Avatar: "💎", XP: 1250},
	}
}

// SkillTable maps opponent id to skill: the highest score the opponent can
// draw in a settlement.
type SkillTable map[string]int

// DefaultSkills returns the skill table for the built-in bots.
func DefaultSkills() SkillTable {
	return SkillTable{
		"bot1": 3,
		"bot2": 4,
		"bot3": 5,
	}
}

// Skill returns the skill for id, or DefaultSkill when unknown.
func (t SkillTable) Skill(id string) int {
	if s, ok := t[id]; ok {
		return s
	}
	return DefaultSkill
}
