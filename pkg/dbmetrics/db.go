package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// Collector приемник метрик БД
type Collector interface {
	ObserveDBQuery(service, operation string, duration time.Duration, err error)
	SetDBPoolStats(service string, stats sql.DBStats)
}

// DB обёртка над *sql.DB, которая замеряет длительность запросов
type DB struct {
	db          *sql.DB
	collector   Collector
	serviceName string
}

// Wrap оборачивает *sql.DB без фонового сбора статистики пула
func Wrap(db *sql.DB, collector Collector, serviceName string) *DB {
	return &DB{
		db:          db,
		collector:   collector,
		serviceName: serviceName,
	}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// с интервалом DefaultStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector Collector, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, serviceName)
	go wrapped.collectPoolStats(DefaultStatsInterval, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.collector.SetDBPoolStats(d.serviceName, d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.collector.SetDBPoolStats(d.serviceName, d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return result, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx начинает транзакцию, запросы которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.collector.ObserveDBQuery(d.serviceName, "begin", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if err == sql.ErrNoRows {
		err = nil
	}
	d.collector.ObserveDBQuery(d.serviceName, operation(query), time.Since(start), err)
}

// Tx транзакция с замером запросов
type Tx struct {
	tx *sql.Tx
	db *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return result, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.db.collector.ObserveDBQuery(t.db.serviceName, "commit", time.Since(start), err)
	return err
}

func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return err
	}
	t.db.collector.ObserveDBQuery(t.db.serviceName, "rollback", time.Since(start), err)
	return err
}

// operation определяет тип запроса по первому ключевому слову
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}

	op := strings.ToLower(fields[0])
	switch op {
	case "select", "insert", "update", "delete":
		return op
	default:
		return "other"
	}
}
