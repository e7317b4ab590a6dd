package engine

import (
	"context"
	"fmt"

	"medusa/internal/chore"
)

type CompleteResult struct {
	Chore    chore.Chore
	Previous chore.Date
	Index    int
}

// Complete marks the first chore with the given name and location as done
// today. A miss returns chore.ErrChoreNotFound and nothing is written.
func (s *Service) Complete(ctx context.Context, name, location string) (*CompleteResult, error) {
	key := chore.KeyOf(name, location)
	s.log.WithField("chore", key).Info("completing chore")

	var res *CompleteResult
	err := s.run(ctx, "complete", func(chores []chore.Chore) error {
		prev := previousCompletion(chores, name, location)
		idx, err := chore.Complete(chores, name, location, s.Now())
		if err != nil {
			return fmt.Errorf("complete %s: %w", key, err)
		}
		res = &CompleteResult{Chore: chores[idx], Previous: prev, Index: idx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func previousCompletion(chores []chore.Chore, name, location string) chore.Date {
	for _, c := range chores {
		if c.Matches(name, location) {
			return c.LastCompleted
		}
	}
	return chore.Date{}
}
