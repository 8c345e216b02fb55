package taskgen

import "github.com/abhisek/geoquest/internal/topics"

var contextProblems = []choicePrompt{
	{
		question:    "A room is 4 m wide and 5 m long. How many 1 m² tiles are needed at least?",
		options:     []string{"9", "20", "25", "40"},
		correct:     1,
		explanation: "A = 4 m * 5 m = 20 m².",
	},
	{
		question:    "An aquarium (cuboid) is 60 cm long, 30 cm wide and 40 cm high. How many liters fit inside? (1 liter = 1000 cm³)",
		options:     []string{"72 liters", "130 liters", "240 liters", "720 liters"},
		correct:     0,
		explanation: "V = 60 * 30 * 40 = 72,000 cm³. That is 72 liters.",
	},
}

func contextTask(id string, index int) *MultipleChoice {
	return choiceTask(id, topics.Context, contextProblems[index%len(contextProblems)])
}
