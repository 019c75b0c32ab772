// Package queue is the durable local store for scans captured while the
// record store was unreachable. It is SQLite-backed so pending scans survive
// process restarts and power loss at the workstation.
package queue

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/infrastructure/metrics"
	"mecanica_parts/internal/usecase/interfaces"

	_ "modernc.org/sqlite" // register the pure-Go sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS pending_scans (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id   TEXT NOT NULL,
    barcode    TEXT NOT NULL,
    retries    INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
CREATE INDEX IF NOT EXISTS idx_pending_order_fifo ON pending_scans(order_id, id ASC);
`

// SQLiteScanQueue persists pending scans keyed by order, FIFO within an
// order via the autoincrement id. The same (order, barcode) pair may appear
// more than once: each row is one increment, and collapsing them would
// under-count on drain.
type SQLiteScanQueue struct {
	db *sql.DB
}

var _ interfaces.IScanQueue = (*SQLiteScanQueue)(nil)

// Open opens (or creates) the queue database at path and applies the schema.
// The in-memory path ":memory:" works for tests.
func Open(path string) (*SQLiteScanQueue, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open scan queue: %w", err)
	}
	// The queue is written from the scan loop and the drain loop; sqlite
	// wants a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply scan queue schema: %w", err)
	}

	q := &SQLiteScanQueue{db: db}
	if depth, err := q.depth(context.Background()); err == nil {
		metrics.QueueDepth.Set(float64(depth))
	}
	return q, nil
}

func (q *SQLiteScanQueue) Close() error {
	return q.db.Close()
}

func (q *SQLiteScanQueue) Append(ctx context.Context, orderID, barcode string) (entities.PendingScan, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO pending_scans (order_id, barcode, created_at) VALUES (?, ?, ?)`,
		orderID, barcode, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return entities.PendingScan{}, fmt.Errorf("append pending scan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.PendingScan{}, err
	}

	metrics.QueueDepth.Inc()
	metrics.ScansQueued.Inc()
	return entities.PendingScan{
		ID:        id,
		OrderID:   orderID,
		Barcode:   barcode,
		CreatedAt: now,
	}, nil
}

func (q *SQLiteScanQueue) List(ctx context.Context, orderID string) ([]entities.PendingScan, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, order_id, barcode, retries, created_at FROM pending_scans WHERE order_id = ? ORDER BY id ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pending scans: %w", err)
	}
	defer rows.Close()

	var scans []entities.PendingScan
	for rows.Next() {
		var s entities.PendingScan
		var createdAt string
		if err := rows.Scan(&s.ID, &s.OrderID, &s.Barcode, &s.Retries, &createdAt); err != nil {
			return nil, err
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

func (q *SQLiteScanQueue) ListOrderIDs(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT DISTINCT order_id FROM pending_scans ORDER BY order_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (q *SQLiteScanQueue) Remove(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM pending_scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove pending scan: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		metrics.QueueDepth.Sub(float64(n))
	}
	return nil
}

func (q *SQLiteScanQueue) MarkRetry(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `UPDATE pending_scans SET retries = retries + 1 WHERE id = ?`, id)
	return err
}

func (q *SQLiteScanQueue) CountByOrder(ctx context.Context, orderID string) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pending_scans WHERE order_id = ?`, orderID,
	).Scan(&n)
	return n, err
}

func (q *SQLiteScanQueue) PurgeOrder(ctx context.Context, orderID string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM pending_scans WHERE order_id = ?`, orderID)
	if err != nil {
		return fmt.Errorf("purge pending scans: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		metrics.QueueDepth.Sub(float64(n))
	}
	return nil
}

func (q *SQLiteScanQueue) depth(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pending_scans`).Scan(&n)
	return n, err
}
