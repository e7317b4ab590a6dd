package engine

import (
	"context"

	"medusa/internal/chore"
)

// DueChore is a chore eligible today together with its hat weight.
type DueChore struct {
	Chore       chore.Chore
	DueDate     chore.Date
	OverdueDays int
	Copies      int
}

type ListResult struct {
	AsOf    chore.Date
	DayType chore.DayType
	Due     []DueChore
}

// Due computes today's eligible chores and their weights from an in-memory
// list. It never mutates chores.
func Due(chores []chore.Chore, asOf chore.Date) (*ListResult, error) {
	due, err := chore.DueToday(chores, asOf)
	if err != nil {
		return nil, err
	}
	hat, err := chore.BuildHat(due, asOf)
	if err != nil {
		return nil, err
	}

	res := &ListResult{AsOf: asOf, DayType: chore.Classify(asOf)}
	weights := hat.Weights()
	for i, c := range due {
		res.Due = append(res.Due, DueChore{
			Chore:       c,
			DueDate:     chore.DueDate(c),
			OverdueDays: asOf.DaysSince(c.LastCompleted),
			Copies:      weights[i],
		})
	}
	return res, nil
}

// List reports today's eligible chores. The file is written back unchanged.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	var res *ListResult
	err := s.run(ctx, "list", func(chores []chore.Chore) error {
		var err error
		res, err = Due(chores, s.Today())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("due", len(res.Due)).Debug("listed open chores")
	return res, nil
}
