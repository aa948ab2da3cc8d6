// internal/trace/recorder_test.go
package trace

import (
	"path/filepath"
	"testing"

	"liftcontrol/internal/control"
	"liftcontrol/internal/fault"
	"liftcontrol/internal/telemetry"
)

func TestRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.sqlite3")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	defer r.Close()

	for i := uint64(1); i <= 3; i++ {
		s := telemetry.Snapshot{
			Cycle:    i,
			State:    control.Lifting,
			Fault:    fault.None,
			Position: float64(i) * 0.01,
		}
		if err := r.Publish(s); err != nil {
			t.Fatalf("Publish err=%v", err)
		}
	}

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush err=%v", err)
	}

	var count int
	row := r.db.QueryRow("SELECT COUNT(*) FROM cycles WHERE run_id = ?", r.RunID())
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Scan err=%v", err)
	}
	if count != 3 {
		t.Fatalf("count=%d, want 3", count)
	}
}

func TestRecorder_BatchFlushesWhenFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.sqlite3")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	defer r.Close()
	r.batchSize = 2

	r.Publish(telemetry.Snapshot{Cycle: 1})
	r.Publish(telemetry.Snapshot{Cycle: 2}) // triggers the flush

	var count int
	row := r.db.QueryRow("SELECT COUNT(*) FROM cycles")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Scan err=%v", err)
	}
	if count != 2 {
		t.Fatalf("count=%d, want 2", count)
	}
	if len(r.batch) != 0 {
		t.Fatalf("batch not drained after flush")
	}
}

func TestRecorder_FlushEmptyBatchIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.sqlite3")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	defer r.Close()

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush err=%v", err)
	}
}
