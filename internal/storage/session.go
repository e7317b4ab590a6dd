package storage

import (
	"context"

	"medusa/internal/chore"
)

// WithChores loads the chore list, runs fn on it and writes it back only when
// fn succeeds. fn may mutate the slice in place. A process killed between the
// load and the save loses that invocation's change; nothing is journaled.
func WithChores(ctx context.Context, repo *ChoreRepo, fn func(chores []chore.Chore) error) error {
	chores, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(chores); err != nil {
		return err
	}
	return repo.Save(ctx, chores)
}
