// Package generator picks snippets to practice.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/sniptype/internal/model"
)

// Generator picks snippets at random.
type Generator struct {
	rnd  *rand.Rand
	last string
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a snippet uniformly. When more than one candidate exists the
// snippet returned by the previous call is not repeated.
func (g *Generator) Pick(snippets []model.Snippet) (model.Snippet, bool) {
	if len(snippets) == 0 {
		return model.Snippet{}, false
	}
	candidates := snippets
	if len(snippets) > 1 && g.last != "" {
		candidates = make([]model.Snippet, 0, len(snippets))
		for _, s := range snippets {
			if s.Code != g.last {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) == 0 {
			candidates = snippets
		}
	}
	picked := candidates[g.rnd.Intn(len(candidates))]
	g.last = picked.Code
	return picked, true
}
