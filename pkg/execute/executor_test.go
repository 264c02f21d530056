package execute

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fastrenamer/fastrenamer/pkg/logging"
	"github.com/fastrenamer/fastrenamer/pkg/models"
	"github.com/fastrenamer/fastrenamer/pkg/output"
	"github.com/fastrenamer/fastrenamer/pkg/storage"
)

func newTestExecutor(t *testing.T, names ...string) (*Executor, *storage.Local) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	backend, err := storage.NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	exec := NewExecutor(backend, output.NewHumanFormatter(io.Discard, false), logging.NewNullLogger())
	return exec, backend
}

func testPlan(dir string, pairs ...models.RenamePair) *models.RenamePlan {
	return &models.RenamePlan{
		ID:    "test-plan",
		Dir:   dir,
		Pairs: pairs,
	}
}

func fileContent(t *testing.T, backend *storage.Local, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(backend.Root(), name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

func TestExecuteSimpleRename(t *testing.T) {
	exec, backend := newTestExecutor(t, "img1.png", "img2.png")
	defer backend.Close()

	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "img1.png", Proposed: "photo_001.png"},
		models.RenamePair{Source: "img2.png", Proposed: "photo_002.png"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if report.Status != models.StatusSuccess {
		t.Errorf("Status = %s, want success", report.Status)
	}
	if report.Stats.Renamed != 2 {
		t.Errorf("Renamed = %d, want 2", report.Stats.Renamed)
	}

	ctx := context.Background()
	for _, name := range []string{"photo_001.png", "photo_002.png"} {
		if ok, _ := backend.Exists(ctx, name); !ok {
			t.Errorf("%s should exist after execution", name)
		}
	}
	if ok, _ := backend.Exists(ctx, "img1.png"); ok {
		t.Error("img1.png should be gone")
	}
}

func TestExecuteSwap(t *testing.T) {
	exec, backend := newTestExecutor(t, "a.txt", "b.txt")
	defer backend.Close()

	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "a.txt", Proposed: "b.txt"},
		models.RenamePair{Source: "b.txt", Proposed: "a.txt"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if report.Status != models.StatusSuccess {
		t.Fatalf("Status = %s, want success (%+v)", report.Status, report.Results)
	}

	// Contents must have traded places
	if got := fileContent(t, backend, "a.txt"); got != "b.txt" {
		t.Errorf("a.txt content = %q, want %q", got, "b.txt")
	}
	if got := fileContent(t, backend, "b.txt"); got != "a.txt" {
		t.Errorf("b.txt content = %q, want %q", got, "a.txt")
	}
}

func TestExecuteShiftChain(t *testing.T) {
	exec, backend := newTestExecutor(t, "photo_001.png", "photo_002.png")
	defer backend.Close()

	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "photo_001.png", Proposed: "photo_002.png"},
		models.RenamePair{Source: "photo_002.png", Proposed: "photo_003.png"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if report.Status != models.StatusSuccess {
		t.Fatalf("Status = %s, want success (%+v)", report.Status, report.Results)
	}

	if got := fileContent(t, backend, "photo_002.png"); got != "photo_001.png" {
		t.Errorf("photo_002.png content = %q, want %q", got, "photo_001.png")
	}
	if got := fileContent(t, backend, "photo_003.png"); got != "photo_002.png" {
		t.Errorf("photo_003.png content = %q, want %q", got, "photo_002.png")
	}
}

func TestExecuteNoOpSkipped(t *testing.T) {
	exec, backend := newTestExecutor(t, "a.txt", "b.txt")
	defer backend.Close()

	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "a.txt", Proposed: "renamed.txt"},
		models.RenamePair{Source: "b.txt", Proposed: "b.txt"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if report.Status != models.StatusSuccess {
		t.Errorf("Status = %s, want success", report.Status)
	}
	if report.Stats.Renamed != 1 || report.Stats.Skipped != 1 {
		t.Errorf("Stats = %+v, want 1 renamed / 1 skipped", report.Stats)
	}
	if report.Results[1].Outcome != models.OutcomeSkipped {
		t.Errorf("no-op outcome = %s, want skipped", report.Results[1].Outcome)
	}
}

func TestExecuteVanishedSource(t *testing.T) {
	exec, backend := newTestExecutor(t, "a.txt", "gone.txt")
	defer backend.Close()

	// gone.txt vanishes between planning and execution
	if err := os.Remove(filepath.Join(backend.Root(), "gone.txt")); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "a.txt", Proposed: "kept.txt"},
		models.RenamePair{Source: "gone.txt", Proposed: "other.txt"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if report.Status != models.StatusPartial {
		t.Errorf("Status = %s, want partial", report.Status)
	}
	if report.Results[1].Outcome != models.OutcomeNotFound {
		t.Errorf("outcome = %s, want not-found", report.Results[1].Outcome)
	}
	if ok, _ := backend.Exists(context.Background(), "kept.txt"); !ok {
		t.Error("the surviving entry should still be renamed")
	}
}

func TestExecuteDestinationTakenAtRuntime(t *testing.T) {
	exec, backend := newTestExecutor(t, "a.txt", "intruder.txt")
	defer backend.Close()

	// The plan was computed before intruder.txt existed
	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "a.txt", Proposed: "intruder.txt"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if report.Status != models.StatusFailed {
		t.Errorf("Status = %s, want failed", report.Status)
	}
	if report.Results[0].Outcome != models.OutcomeAlreadyExists {
		t.Errorf("outcome = %s, want already-exists", report.Results[0].Outcome)
	}
	// Neither file may be touched
	if got := fileContent(t, backend, "a.txt"); got != "a.txt" {
		t.Errorf("a.txt content = %q, want untouched", got)
	}
	if got := fileContent(t, backend, "intruder.txt"); got != "intruder.txt" {
		t.Errorf("intruder.txt content = %q, want untouched", got)
	}
}

func TestExecuteResultsInPlanOrder(t *testing.T) {
	exec, backend := newTestExecutor(t, "one.txt", "two.txt", "three.txt")
	defer backend.Close()

	plan := testPlan(backend.Root(),
		models.RenamePair{Source: "one.txt", Proposed: "1.txt"},
		models.RenamePair{Source: "two.txt", Proposed: "two.txt"},
		models.RenamePair{Source: "three.txt", Proposed: "3.txt"},
	)

	report, err := exec.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	sources := []string{"one.txt", "two.txt", "three.txt"}
	for i, r := range report.Results {
		if r.Source != sources[i] {
			t.Errorf("Results[%d].Source = %s, want %s", i, r.Source, sources[i])
		}
	}
}
