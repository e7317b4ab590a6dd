package root

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medusa/internal/chore"
)

const fixture = `[
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
        "description": "",
        "frequency": 1,
        "delta": 1,
        "type": "weekday",
        "last_completed": "12/01/2023"
    }
]
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "chores.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	path := writeFixture(t, fixture)

	out, logs, err := run(t, "list", path, "--date", "01/10/2024")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "[Garage] Trash") || !strings.Contains(out, "[Kitchen] Dishes") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(logs, "importing chores") || !strings.Contains(logs, "exported chores") {
		t.Fatalf("expected import/export logs, got:\n%s", logs)
	}
	data, _ := os.ReadFile(path)
	if string(data) != fixture {
		t.Fatalf("list changed the chore file:\n%s", data)
	}
}

func TestCompleteCommand(t *testing.T) {
	path := writeFixture(t, fixture)

	out, _, err := run(t, "complete", path, "-n", "Dishes", "-l", "Kitchen", "--date", "01/10/2024")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(out, "12/01/2023 → 01/10/2024") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"last_completed": "01/10/2024"`) {
		t.Fatalf("completion not written:\n%s", data)
	}
}

func TestCompleteCommandNotFoundIsNonFatal(t *testing.T) {
	path := writeFixture(t, fixture)

	out, _, err := run(t, "complete", path, "--chore_name", "Dishes", "--chore_loc", "Attic")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(out, "Not found") {
		t.Fatalf("expected a not-found warning, got:\n%s", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != fixture {
		t.Fatal("file rewritten after a miss")
	}
}

func TestCompleteCommandRequiresFlags(t *testing.T) {
	path := writeFixture(t, fixture)
	if _, _, err := run(t, "complete", path, "-n", "Dishes"); err == nil {
		t.Fatal("expected error without --chore_loc")
	}
}

func TestPickCommandNoEligible(t *testing.T) {
	path := writeFixture(t, fixture)

	// Saturday: weekday chores are eligible, but neither is past due on 12/02/2023.
	_, _, err := run(t, "pick", path, "--date", "12/02/2023")
	if !errors.Is(err, chore.ErrNoEligibleChores) {
		t.Fatalf("err=%v, want ErrNoEligibleChores", err)
	}
	if exitCode(err) != exitNoEligible {
		t.Fatalf("exit code=%d, want %d", exitCode(err), exitNoEligible)
	}
}

func TestPickCommand(t *testing.T) {
	path := writeFixture(t, fixture)

	out, _, err := run(t, "pick", path, "--date", "01/10/2024", "--log-level", "error")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !strings.Contains(out, "Chore picked:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLoadFailureExitCode(t *testing.T) {
	path := writeFixture(t, `[{"name": "Trash"}]`)

	_, _, err := run(t, "list", path)
	if got := exitCode(err); got != exitLoad {
		t.Fatalf("exit code=%d, want %d (err=%v)", got, exitLoad, err)
	}

	_, _, err = run(t, "list", filepath.Join(t.TempDir(), "missing.json"))
	if got := exitCode(err); got != exitLoad {
		t.Fatalf("missing file exit code=%d, want %d", got, exitLoad)
	}
}

func TestInvalidConfigurationExitCode(t *testing.T) {
	path := writeFixture(t, strings.Replace(fixture, `"delta": 7`, `"delta": 0`, 1))

	_, _, err := run(t, "pick", path)
	if got := exitCode(err); got != exitInvalidConfig {
		t.Fatalf("exit code=%d, want %d (err=%v)", got, exitInvalidConfig, err)
	}
}

func TestExitCodeDefault(t *testing.T) {
	if got := exitCode(fmt.Errorf("wrapped: %w", errors.New("boom"))); got != exitFailure {
		t.Fatalf("exit code=%d, want %d", got, exitFailure)
	}
}

func TestRequiresChoreFile(t *testing.T) {
	if _, _, err := run(t, "list"); err == nil {
		t.Fatal("expected error without a chore file")
	}
}

func TestStatusCommandIsReadOnly(t *testing.T) {
	path := writeFixture(t, fixture)
	info, _ := os.Stat(path)

	out, _, err := run(t, "status", path, "--date", "01/05/2024")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "weekday chores") || !strings.Contains(out, "due after 01/08/2024") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	after, _ := os.Stat(path)
	if !after.ModTime().Equal(info.ModTime()) {
		t.Fatal("status rewrote the chore file")
	}
}
