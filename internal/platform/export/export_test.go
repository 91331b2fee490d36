package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := &Snapshot{
		ExportedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		ExportID:   "test-export-id",
		Tables: map[string][]map[string]any{
			"doctors": {{"id": int64(1), "first_name": "Amina"}},
			"patients": {
				{"id": int64(1), "first_name": "Yacine"},
				{"id": int64(2), "first_name": "Sara"},
			},
		},
	}

	path, err := WriteSnapshot(dir, snap)
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if !strings.HasSuffix(path, "medibook-export-test-export-id.json") {
		t.Errorf("unexpected file name %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.ExportID != snap.ExportID {
		t.Errorf("ExportID = %q, want %q", back.ExportID, snap.ExportID)
	}
	if len(back.Tables["patients"]) != 2 {
		t.Errorf("expected 2 patient rows, got %d", len(back.Tables["patients"]))
	}
}

func TestWriteSnapshot_BadDir(t *testing.T) {
	snap := &Snapshot{ExportID: "x", Tables: map[string][]map[string]any{}}
	if _, err := WriteSnapshot("/nonexistent/path", snap); err == nil {
		t.Error("expected error writing into missing directory")
	}
}
