package topics

import (
	"fmt"
	"slices"
	"strings"
)

// catalog holds the topics with a precomputed id index.
type catalog struct {
	topics []Topic
	byID   map[string]*Topic
}

var c = buildCatalog(seedTopics)

func buildCatalog(topics []Topic) *catalog {
	cat := &catalog{
		topics: topics,
		byID:   make(map[string]*Topic, len(topics)),
	}
	for i := range cat.topics {
		cat.byID[cat.topics[i].ID] = &cat.topics[i]
	}
	return cat
}

// Get returns a topic by ID, or an error if not found.
func Get(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// All returns all topics in segment order.
func All() []Topic {
	return slices.Clone(c.topics)
}

// ByGroup returns the topics of a group in segment order.
func ByGroup(g Group) []Topic {
	var out []Topic
	for _, t := range c.topics {
		if t.Group == g {
			out = append(out, t)
		}
	}
	return out
}

// Search returns topics whose title or keywords contain term,
// case-insensitively. An empty term returns all topics.
func Search(term string) []Topic {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return All()
	}
	var out []Topic
	for _, t := range c.topics {
		if strings.Contains(strings.ToLower(t.Title), term) {
			out = append(out, t)
			continue
		}
		for _, kw := range t.Keywords {
			if strings.Contains(kw, term) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// IDs returns all topic ids in segment order.
func IDs() []string {
	ids := make([]string, len(c.topics))
	for i, t := range c.topics {
		ids[i] = t.ID
	}
	return ids
}
