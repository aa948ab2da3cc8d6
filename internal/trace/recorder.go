// internal/trace/recorder.go
package trace

import (
	"database/sql"
	"fmt"
	"sync"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"liftcontrol/internal/telemetry"
)

const createTable = `
CREATE TABLE IF NOT EXISTS cycles (
	run_id     TEXT NOT NULL,
	cycle      INTEGER NOT NULL,
	state      INTEGER NOT NULL,
	fault      INTEGER NOT NULL,
	position   REAL NOT NULL,
	velocity   REAL NOT NULL,
	target     REAL NOT NULL,
	load_kg    REAL NOT NULL,
	motor      INTEGER NOT NULL,
	brake      INTEGER NOT NULL,
	fault_lamp INTEGER NOT NULL,
	source_err TEXT
);`

const insertCycle = `
INSERT INTO cycles
	(run_id, cycle, state, fault, position, velocity, target, load_kg, motor, brake, fault_lamp, source_err)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

// Recorder batches cycle snapshots into a SQLite file. Every run gets
// its own run id, so one file can hold many runs.
type Recorder struct {
	mu    sync.Mutex
	db    *sql.DB
	runID string

	batch     []telemetry.Snapshot
	batchSize int
}

// Open creates (or appends to) the trace database at path. An empty
// path generates a fresh file name. The recorder flushes its batch at
// process exit; call Close for an orderly shutdown before that.
func Open(path string) (*Recorder, error) {
	if path == "" {
		path = "lift_trace_" + xid.New().String() + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: create table: %w", err)
	}

	r := &Recorder{
		db:        db,
		runID:     xid.New().String(),
		batchSize: 512,
	}

	atexit.Register(func() {
		if err := r.Flush(); err != nil {
			fmt.Println("trace: flush at exit:", err)
		}
	})

	return r, nil
}

// RunID identifies this run's rows in the database.
func (r *Recorder) RunID() string {
	return r.runID
}

// Publish implements scan.Sink. Rows are buffered and written in
// batches; a full batch triggers a flush inline.
func (r *Recorder) Publish(s telemetry.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.batch = append(r.batch, s)
	if len(r.batch) < r.batchSize {
		return nil
	}
	return r.flushLocked()
}

// Flush writes all buffered rows.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushLocked()
}

func (r *Recorder) flushLocked() error {
	if len(r.batch) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("trace: begin: %w", err)
	}

	stmt, err := tx.Prepare(insertCycle)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("trace: prepare: %w", err)
	}
	defer stmt.Close()

	for _, s := range r.batch {
		var srcErr any
		if s.Err != nil {
			srcErr = s.Err.Error()
		}
		_, err := stmt.Exec(
			r.runID,
			s.Cycle,
			int(s.State),
			int(s.Fault),
			s.Position,
			s.Velocity,
			s.Target,
			s.In.LoadKg,
			s.Out.MotorEnable,
			s.Out.BrakeEngaged,
			s.Out.FaultLamp,
			srcErr,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("trace: insert cycle %d: %w", s.Cycle, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("trace: commit: %w", err)
	}

	r.batch = r.batch[:0]
	return nil
}

// Close flushes and closes the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		r.db.Close()
		return err
	}
	return r.db.Close()
}
