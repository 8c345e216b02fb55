// Package taskgen generates geometry tasks from fixed per-topic templates
// with randomized operands, and evaluates submitted answers.
package taskgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/geoquest/internal/topics"
)

// DefaultCount is the number of tasks in a quest or battle.
const DefaultCount = 5

// Generate returns exactly count tasks for topicID. A count below 1 is
// treated as 1. Unknown topics fall back to shape concept questions.
//
// The template shape is fixed per topic; operand values come from r. One
// batch seed is drawn from r per call and mixed into every task ID and the
// visual/textual variety choice.
func Generate(topicID string, count int, r *rand.Rand) []Task {
	if count < 1 {
		count = 1
	}

	b := batch{topic: topicID, seed: r.Uint64(), r: r}
	tasks := make([]Task, 0, count)
	for i := range count {
		tasks = append(tasks, b.task(i))
	}
	return tasks
}

// batch carries per-call generation state.
type batch struct {
	topic string
	seed  uint64
	r     *rand.Rand
}

// visual reports whether index i should get a visual-choice variant.
func (b batch) visual(i int) bool {
	return (uint64(i)+b.seed)%3 == 0
}

func (b batch) id(topic, tag string, i int) string {
	return fmt.Sprintf("%s-%s-%d-%x", topic, tag, i, b.seed)
}

func (b batch) task(i int) Task {
	switch b.topic {
	case topics.Shapes:
		if b.visual(i) {
			return visualShapeTask(b.id(topics.Shapes, "vis", i), i)
		}
		return shapeConceptTask(b.id(topics.Shapes, "gen", i), i)

	case topics.Angles:
		if b.visual(i) {
			return hypotenuseTask(b.id(topics.Angles, "vis", i))
		}
		return angleTask(b.id(topics.Angles, "gen", i), i, b.r)

	case topics.Areas:
		return areaTask(b.id(topics.Areas, "gen", i), i, b.r)

	case topics.Volumes:
		return volumeTask(b.id(topics.Volumes, "gen", i), i, b.r)

	case topics.Scaling:
		return scalingTask(b.id(topics.Scaling, "gen", i), i, b.r)

	case topics.Context:
		return contextTask(b.id(topics.Context, "gen", i), i)

	default:
		return shapeConceptTask(b.id(topics.Shapes, "gen", i), i)
	}
}
