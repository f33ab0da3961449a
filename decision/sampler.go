package decision

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrSamplingInfeasible marks sampler precondition failures: the request can
// never be satisfied and must surface to the caller rather than under-fill.
var ErrSamplingInfeasible = errors.New("sampling infeasible")

// Candidate is one selectable document reference inside a class pool.
type Candidate struct {
	Class   string `json:"class"`
	DocID   int64  `json:"id"`
	Source  string `json:"source"`
	Variant string `json:"variant"`
}

// SampleBalanced picks total candidates across the class pools: exactly one
// uniformly-random item per class first (full class coverage), the rest by
// uniform sampling without replacement from the union of the remaining
// candidates, then a final shuffle so the output has no class-contiguous
// runs. Every class must be representable.
func SampleBalanced(pools map[string][]Candidate, total int, rng *rand.Rand) ([]Candidate, error) {
	classes := make([]string, 0, len(pools))
	for class := range pools {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	var empty []string
	for _, class := range classes {
		if len(pools[class]) == 0 {
			empty = append(empty, class)
		}
	}
	if len(empty) > 0 {
		return nil, fmt.Errorf("%w: classes with no candidates: %v", ErrSamplingInfeasible, empty)
	}
	if total < len(classes) {
		return nil, fmt.Errorf("%w: total=%d is below the number of classes (%d), cannot guarantee coverage",
			ErrSamplingInfeasible, total, len(classes))
	}

	chosen := make([]Candidate, 0, total)
	chosenIDs := make(map[int64]bool)

	for _, class := range classes {
		items := pools[class]
		pick := items[rng.Intn(len(items))]
		chosen = append(chosen, pick)
		chosenIDs[pick.DocID] = true
	}

	var pool []Candidate
	for _, class := range classes {
		for _, item := range pools[class] {
			if !chosenIDs[item.DocID] {
				pool = append(pool, item)
				chosenIDs[item.DocID] = true
			}
		}
	}

	remaining := total - len(chosen)
	if remaining > len(pool) {
		return nil, fmt.Errorf("%w: requested total=%d but only %d unique candidates available",
			ErrSamplingInfeasible, total, len(chosen)+len(pool))
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	chosen = append(chosen, pool[:remaining]...)

	rng.Shuffle(len(chosen), func(i, j int) {
		chosen[i], chosen[j] = chosen[j], chosen[i]
	})
	return chosen, nil
}
