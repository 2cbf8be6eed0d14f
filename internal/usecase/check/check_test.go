package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

func writeLevel(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestFileValid(t *testing.T) {
	path := writeLevel(t, `{
	  "width": 3, "height": 3,
	  "walls": [
	    {"start": {"x":0,"y":0}, "end": {"x":0,"y":2}},
	    {"start": {"x":2,"y":0}, "end": null}
	  ],
	  "start": {"x":1,"y":1},
	  "end": {"x":2,"y":2},
	  "checkpoints": []
	}`)

	results, err := File(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := domain.Failures(results); got != 0 {
		t.Fatalf("expected no failures, got %d: %+v", got, results)
	}
}

func TestFileBrokenOrdering(t *testing.T) {
	path := writeLevel(t, `{
	  "width": 3, "height": 3,
	  "walls": [
	    {"start": {"x":2,"y":0}, "end": null},
	    {"start": {"x":0,"y":0}, "end": {"x":0,"y":2}}
	  ],
	  "start": {"x":1,"y":1},
	  "end": {"x":2,"y":2},
	  "checkpoints": []
	}`)

	results, err := File(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if domain.Failures(results) == 0 {
		t.Fatalf("expected ordering failure: %+v", results)
	}
}

func TestFileNotJSON(t *testing.T) {
	path := writeLevel(t, "not json at all")
	if _, err := File(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.json"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}
