// Package export dumps the scheduling tables to a JSON snapshot file, the
// operational counterpart of a database backup for small deployments.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medibook/medibook/internal/platform/db"
)

// Credentials are deliberately left out of the snapshot; it carries schedule
// data only.
var exportTables = []string{"doctors", "patients", "availability_windows", "absences", "appointments"}

// Snapshot is the on-disk layout: one row list per table plus metadata.
type Snapshot struct {
	ExportedAt time.Time                   `json:"exported_at"`
	ExportID   string                      `json:"export_id"`
	Tables     map[string][]map[string]any `json:"tables"`
}

type Exporter struct {
	conn db.Queryable
	dir  string
	log  zerolog.Logger
}

func New(conn db.Queryable, dir string, log zerolog.Logger) *Exporter {
	return &Exporter{conn: conn, dir: dir, log: log}
}

// Run collects every table and writes the snapshot, returning the file path.
func (e *Exporter) Run(ctx context.Context) (string, error) {
	snap := &Snapshot{
		ExportedAt: time.Now().UTC(),
		ExportID:   uuid.NewString(),
		Tables:     map[string][]map[string]any{},
	}
	for _, table := range exportTables {
		rows, err := e.dumpTable(ctx, table)
		if err != nil {
			return "", fmt.Errorf("export %s: %w", table, err)
		}
		snap.Tables[table] = rows
	}

	path, err := WriteSnapshot(e.dir, snap)
	if err != nil {
		return "", err
	}
	e.log.Info().Str("path", path).Str("export_id", snap.ExportID).Msg("schedule exported")
	return path, nil
}

func (e *Exporter) dumpTable(ctx context.Context, table string) ([]map[string]any, error) {
	rows, err := e.conn.Query(ctx, `SELECT * FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := map[string]any{}
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// WriteSnapshot serializes snap into dir under a unique name and returns the
// path.
func WriteSnapshot(dir string, snap *Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("medibook-export-%s.json", snap.ExportID))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
