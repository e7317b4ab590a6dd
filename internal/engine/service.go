package engine

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"medusa/internal/chore"
	"medusa/internal/storage"
)

// Service runs one chore action against the chore file: load, act, save.
type Service struct {
	repo *storage.ChoreRepo
	log  logrus.FieldLogger
	now  func() time.Time
	rng  chore.Source
}

type Option func(*Service)

// WithLogger sets the operational logger. Defaults to a discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSource overrides the random source used by Pick.
func WithSource(rng chore.Source) Option {
	return func(s *Service) { s.rng = rng }
}

func NewService(repo *storage.ChoreRepo, opts ...Option) *Service {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Service{
		repo: repo,
		log:  discard,
		now:  time.Now,
		rng:  chore.DefaultSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Repo() *storage.ChoreRepo { return s.repo }

// Now is the service clock; completions are stamped with its date.
func (s *Service) Now() time.Time { return s.now() }

// Today is the reference date for due checks.
func (s *Service) Today() chore.Date { return chore.DateOf(s.now()) }

// run wraps storage.WithChores with the import/export log lines.
func (s *Service) run(ctx context.Context, action string, fn func(chores []chore.Chore) error) error {
	log := s.log.WithFields(logrus.Fields{"action": action, "path": s.repo.Path()})
	log.Info("importing chores")

	err := storage.WithChores(ctx, s.repo, fn)
	if err != nil {
		log.WithError(err).Warn("action failed, chore file left untouched")
		return err
	}
	log.Info("exported chores")
	return nil
}

// Snapshot loads the chore list without an action attached.
func (s *Service) Snapshot(ctx context.Context) ([]chore.Chore, error) {
	s.log.WithField("path", s.repo.Path()).Info("importing chores")
	return s.repo.Load(ctx)
}

// Commit writes a chore list obtained from Snapshot back to the file.
func (s *Service) Commit(ctx context.Context, chores []chore.Chore) error {
	if err := s.repo.Save(ctx, chores); err != nil {
		return err
	}
	s.log.WithField("path", s.repo.Path()).Info("exported chores")
	return nil
}

// Source is the random source Pick draws with.
func (s *Service) Source() chore.Source { return s.rng }
