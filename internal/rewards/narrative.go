package rewards

import "fmt"

// QuestNarrative is broadcast when a player completes a quest.
func QuestNarrative(topicTitle string) string {
	return fmt.Sprintf("completed the quest %q! 🌟", topicTitle)
}

// BattleNarrative is broadcast when a battle is settled.
func BattleNarrative(win bool, opponentName string) string {
	if win {
		return fmt.Sprintf("defeated %s in a math battle! 🏆", opponentName)
	}
	return fmt.Sprintf("was beaten by %s in a battle. 💀", opponentName)
}
