package hints

import (
	"fmt"
	"strings"
)

const hintSystemPrompt = `You are a friendly geometry mentor for students aged 12 to 15. Give a short hint that points at the right rule or formula. Never state the final answer.`

func buildHintUserMessage(topicTitle, question string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Topic: %s\n", topicTitle))
	b.WriteString(fmt.Sprintf("Task: %s\n", question))
	b.WriteString(`
Instructions:
1. Answer in at most two sentences.
2. Name the property or formula that solves the task.
3. Do not compute the result and do not name the correct option.
4. Use plain text. No LaTeX, no markdown.`)
	return b.String()
}
