package fetch

import "math/rand/v2"

const (
	// RetryBudget is how many candidates a slot may try before it is abandoned.
	RetryBudget = 3

	// FuzzyWindow is how many of the top search results random mode samples from.
	FuzzyWindow = 20
)

// Policy picks the candidate identifier for an attempt.
//
// In sequential mode attempt i of every slot tries the i-th search result.
// In random mode every attempt draws uniformly from the first FuzzyWindow
// results, with replacement: the same identifier can come up again and is
// then turned away by the duplicate filter.
type Policy struct {
	Random bool
	intn   func(n int) int
}

// NewPolicy creates a Policy using the default random source.
func NewPolicy(random bool) Policy {
	return Policy{Random: random, intn: rand.IntN}
}

// NewPolicyWithSource creates a Policy drawing random indexes from intn,
// which must return a value in [0, n).
func NewPolicyWithSource(random bool, intn func(n int) int) Policy {
	return Policy{Random: random, intn: intn}
}

// Candidate returns the identifier to try on the given attempt.
//
// It never indexes out of bounds: sequential attempts past the end of ids
// keep offering the last identifier. ok is false only when ids is empty.
func (p Policy) Candidate(ids []int, attempt int) (id int, ok bool) {
	if len(ids) == 0 {
		return 0, false
	}

	if p.Random {
		intn := p.intn
		if intn == nil {
			intn = rand.IntN
		}
		return ids[intn(min(FuzzyWindow, len(ids)))], true
	}

	attempt = max(attempt, 0)
	attempt = min(attempt, len(ids)-1)
	return ids[attempt], true
}
