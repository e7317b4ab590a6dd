package engine

import (
	"context"

	"github.com/sirupsen/logrus"

	"medusa/internal/chore"
)

type PickResult struct {
	AsOf    chore.Date
	Chore   chore.Chore
	Copies  int
	HatSize int
	Index   int // position in ListResult.Due for the same chores and date
}

// PickFrom builds the hat for asOf and draws one chore from it.
func PickFrom(chores []chore.Chore, asOf chore.Date, rng chore.Source) (*PickResult, error) {
	due, err := chore.DueToday(chores, asOf)
	if err != nil {
		return nil, err
	}
	hat, err := chore.BuildHat(due, asOf)
	if err != nil {
		return nil, err
	}
	i, err := hat.PickIndex(rng)
	if err != nil {
		return nil, err
	}
	return &PickResult{
		AsOf:    asOf,
		Chore:   hat.Chores()[i],
		Copies:  hat.Weights()[i],
		HatSize: hat.Len(),
		Index:   i,
	}, nil
}

// Pick draws a chore from today's hat. An empty hat returns
// chore.ErrNoEligibleChores and leaves the file untouched.
func (s *Service) Pick(ctx context.Context) (*PickResult, error) {
	var res *PickResult
	err := s.run(ctx, "pick", func(chores []chore.Chore) error {
		var err error
		res, err = PickFrom(chores, s.Today(), s.rng)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"chore":  res.Chore.Key(),
		"copies": res.Copies,
		"hat":    res.HatSize,
	}).Info("chore picked")
	return res, nil
}
