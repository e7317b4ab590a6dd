package chore

import "math/rand/v2"

// Source draws a uniform integer in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-wide math/rand/v2 generator.
func DefaultSource() Source { return globalSource{} }

// Copies returns how many times a chore goes into the hat:
// floor(days since last completion / delta) + 1, never less than one.
func Copies(c Chore, asOf Date) (int, error) {
	if c.Delta <= 0 {
		return 0, &InvalidConfigurationError{Name: c.Name, Location: c.Location, Field: "delta", Value: c.Delta}
	}
	overdue := asOf.DaysSince(c.LastCompleted)
	n := floorDiv(overdue, c.Delta) + 1
	if n < 1 {
		n = 1
	}
	return n, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Hat is the multiset a chore is drawn from. Weight is expressed by repeating
// an index into the due slice; the chore records themselves are not copied.
// Unary expansion is exact for integer weights and cheap at household scale.
type Hat struct {
	chores  []Chore
	weights []int
	slots   []int
}

// BuildHat expands the due chores into a hat. Every chore is checked before
// any is inserted, so a bad delta leaves no partial hat behind.
func BuildHat(due []Chore, asOf Date) (Hat, error) {
	weights := make([]int, len(due))
	total := 0
	for i, c := range due {
		n, err := Copies(c, asOf)
		if err != nil {
			return Hat{}, err
		}
		weights[i] = n
		total += n
	}

	slots := make([]int, 0, total)
	for i, n := range weights {
		for range n {
			slots = append(slots, i)
		}
	}
	return Hat{chores: due, weights: weights, slots: slots}, nil
}

// Len is the number of entries, counting every copy.
func (h Hat) Len() int { return len(h.slots) }

// Chores returns the distinct chores in the hat, in due order.
func (h Hat) Chores() []Chore { return h.chores }

// Weights returns the copy count of each chore, aligned with Chores.
func (h Hat) Weights() []int { return h.weights }

// Pick draws one entry uniformly, so a chore with k copies is k times as
// likely as a chore with one.
func (h Hat) Pick(rng Source) (Chore, error) {
	i, err := h.PickIndex(rng)
	if err != nil {
		return Chore{}, err
	}
	return h.chores[i], nil
}

// PickIndex is Pick returning the position of the drawn chore in Chores.
func (h Hat) PickIndex(rng Source) (int, error) {
	if len(h.slots) == 0 {
		return -1, ErrNoEligibleChores
	}
	if rng == nil {
		rng = DefaultSource()
	}
	return h.slots[rng.IntN(len(h.slots))], nil
}
