package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"

	"medusa/internal/chore"
	"medusa/internal/storage"
)

const choreFile = `[
    {
        "name": "Trash",
        "location": "Garage",
        "description": "",
        "frequency": 7,
        "delta": 7,
        "type": "weekday",
        "last_completed": "01/01/2024"
    },
    {
        "name": "Dishes",
        "location": "Kitchen",
        "description": "Hand wash the pans",
        "frequency": 1,
        "delta": 3,
        "type": "weekday",
        "last_completed": "12/01/2023"
    },
    {
        "name": "Mow",
        "location": "Yard",
        "description": "",
        "frequency": 7,
        "delta": 7,
        "type": "weekend",
        "last_completed": "01/01/2024"
    }
]
`

type fixedSource struct{ n int }

func (s fixedSource) IntN(n int) int { return s.n % n }

func clockAt(year int, month time.Month, dayOfMonth int) func() time.Time {
	return func() time.Time { return time.Date(year, month, dayOfMonth, 12, 0, 0, 0, time.Local) }
}

func newTestService(t *testing.T, content string, opts ...Option) (*Service, afero.Fs, *test.Hook) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/chores.json", []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	opts = append([]Option{WithLogger(logger), WithClock(clockAt(2024, time.January, 10))}, opts...)
	svc := NewService(storage.NewChoreRepo(fs, "/chores.json", storage.DefaultIndent), opts...)
	return svc, fs, hook
}

func readFile(t *testing.T, fs afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(fs, "/chores.json")
	if err != nil {
		t.Fatalf("read chores: %v", err)
	}
	return string(data)
}

func TestListOnWeekday(t *testing.T) {
	svc, fs, _ := newTestService(t, choreFile)

	res, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.DayType != chore.Weekday {
		t.Fatalf("day type=%v, want weekday", res.DayType)
	}
	if len(res.Due) != 2 {
		t.Fatalf("due=%d, want 2", len(res.Due))
	}
	trash := res.Due[0]
	if trash.Chore.Name != "Trash" || trash.OverdueDays != 9 || trash.Copies != 2 {
		t.Fatalf("unexpected trash entry: %+v", trash)
	}
	if trash.DueDate.String() != "01/08/2024" {
		t.Fatalf("due date=%s, want 01/08/2024", trash.DueDate)
	}
	if readFile(t, fs) != choreFile {
		t.Fatalf("list mutated the chore file")
	}
}

func TestListOnWeekendIncludesWeekdayBacklog(t *testing.T) {
	svc, _, _ := newTestService(t, choreFile, WithClock(clockAt(2024, time.January, 13)))

	res, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, d := range res.Due {
		names = append(names, d.Chore.Name)
	}
	want := []string{"Mow", "Trash", "Dishes"}
	if len(names) != len(want) {
		t.Fatalf("names=%v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names=%v, want %v", names, want)
		}
	}
}

func TestPickUsesHat(t *testing.T) {
	// Hat on 01/10/2024: Trash x2, Dishes x14 (40 days / 3 + 1).
	svc, fs, hook := newTestService(t, choreFile, WithSource(fixedSource{n: 1}))

	res, err := svc.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if res.Chore.Name != "Trash" || res.Copies != 2 {
		t.Fatalf("picked %s x%d, want Trash x2", res.Chore.Name, res.Copies)
	}
	if res.HatSize != 16 {
		t.Fatalf("hat size=%d, want 16", res.HatSize)
	}
	if readFile(t, fs) != choreFile {
		t.Fatalf("pick mutated the chore file")
	}

	var sawPick bool
	for _, e := range hook.AllEntries() {
		if e.Message == "chore picked" && e.Data["chore"] == "[Garage] Trash" {
			sawPick = true
		}
	}
	if !sawPick {
		t.Fatalf("expected a 'chore picked' log entry")
	}

	res, err = svc.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if res.Chore.Name != "Trash" {
		t.Fatalf("deterministic source picked %s", res.Chore.Name)
	}
}

func TestPickFromReportsDueIndex(t *testing.T) {
	svc, _, _ := newTestService(t, choreFile)
	chores, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	dup := append(chores[:1:1], chores...)
	asOf := svc.Today()

	// Hat: Trash x2, Trash x2, Dishes x14. Slot 3 is the second Trash.
	res, err := PickFrom(dup, asOf, fixedSource{n: 3})
	if err != nil {
		t.Fatalf("PickFrom: %v", err)
	}
	if res.Index != 1 {
		t.Fatalf("index=%d, want 1", res.Index)
	}
	list, err := Due(dup, asOf)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if list.Due[res.Index].Chore != res.Chore {
		t.Fatalf("index does not line up with the due list")
	}
}

func TestPickNoEligibleChores(t *testing.T) {
	svc, fs, _ := newTestService(t, choreFile, WithClock(clockAt(2024, time.January, 2)))
	// 01/02/2024: Dishes is due (weekday). Complete it first so nothing is left.
	if _, err := svc.Complete(context.Background(), "Dishes", "Kitchen"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	before := readFile(t, fs)

	_, err := svc.Pick(context.Background())
	if !errors.Is(err, chore.ErrNoEligibleChores) {
		t.Fatalf("err=%v, want ErrNoEligibleChores", err)
	}
	if readFile(t, fs) != before {
		t.Fatalf("failed pick rewrote the file")
	}
}

func TestComplete(t *testing.T) {
	svc, _, _ := newTestService(t, choreFile)
	ctx := context.Background()

	res, err := svc.Complete(ctx, "Dishes", "Kitchen")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.Index != 1 || res.Previous.String() != "12/01/2023" {
		t.Fatalf("unexpected result: %+v", res)
	}

	chores, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if chores[1].LastCompleted.String() != "01/10/2024" {
		t.Fatalf("last_completed=%s, want 01/10/2024", chores[1].LastCompleted)
	}
	if chores[1].Description != "Hand wash the pans" || chores[1].Frequency != 1 || chores[1].Delta != 3 {
		t.Fatalf("other fields changed: %+v", chores[1])
	}
	if chores[0].LastCompleted.String() != "01/01/2024" || chores[2].LastCompleted.String() != "01/01/2024" {
		t.Fatalf("other chores changed")
	}
}

func TestCompleteNotFoundLeavesFile(t *testing.T) {
	svc, fs, hook := newTestService(t, choreFile)

	_, err := svc.Complete(context.Background(), "Dishes", "Garage")
	if !errors.Is(err, chore.ErrChoreNotFound) {
		t.Fatalf("err=%v, want ErrChoreNotFound", err)
	}
	if readFile(t, fs) != choreFile {
		t.Fatalf("file rewritten after a miss")
	}
	if last := hook.LastEntry(); last == nil || last.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning log entry, got %+v", last)
	}
}

func TestLoadErrorAbortsBeforeSave(t *testing.T) {
	svc, fs, _ := newTestService(t, `[{"name": "Trash"}]`)

	_, err := svc.List(context.Background())
	var loadErr *chore.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err=%v, want LoadError", err)
	}
	if readFile(t, fs) != `[{"name": "Trash"}]` {
		t.Fatalf("file rewritten after a load error")
	}
}

func TestSnapshotCommit(t *testing.T) {
	svc, fs, _ := newTestService(t, choreFile)
	ctx := context.Background()

	chores, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if _, err := chore.Complete(chores, "Mow", "Yard", svc.Now()); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := svc.Commit(ctx, chores); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if readFile(t, fs) == choreFile {
		t.Fatalf("commit did not write the change")
	}
}
