/*
Package sqlite provides SQLite-backed persistence for curve sets.

PURPOSE:
  Stores named market data fixtures (curve sets) so schedule and curve
  tooling can share deterministic inputs. A curve set is a name, a
  valuation date, and the curves themselves with their nodes.

KEY TABLES:
  curve_sets:  One row per named set (unique name, valuation date)
  curves:      Curve metadata, linked to its set
  curve_nodes: (x, y) nodes per curve, y kept as decimal text to avoid
               floating-point drift through the database

CONCURRENCY:
  Uses sync.RWMutex for thread-safety, with WAL mode for better
  concurrent reads.

USAGE:
  store, err := sqlite.New(":memory:")
  defer store.Close()
  id, err := store.SaveCurveSet(ctx, "eur-fixture", valuation, curves)

SEE ALSO:
  - market: Curve and metadata types
  - api: REST surface over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/todatamining/strata/market"
)

// Sentinel errors. Match with errors.Is().
var (
	// ErrSetNotFound is returned when no curve set has the requested name.
	ErrSetNotFound = errors.New("curve set not found")

	// ErrDuplicateSet is returned when saving a set whose name is taken.
	ErrDuplicateSet = errors.New("curve set already exists")
)

// CurveSet is a named group of curves for one valuation date.
type CurveSet struct {
	ID            string
	Name          string
	ValuationDate time.Time
	Curves        []*market.Curve
}

// CurveSetInfo is the listing view of a curve set, without nodes.
type CurveSetInfo struct {
	ID            string
	Name          string
	ValuationDate time.Time
	CurveCount    int
	CreatedAt     time.Time
}

// Store persists curve sets in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A second pooled connection to ":memory:" would see its own empty
	// database, so keep everything on one connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS curve_sets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		valuation_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS curves (
		id TEXT PRIMARY KEY,
		set_id TEXT NOT NULL REFERENCES curve_sets(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		x_value_type TEXT NOT NULL,
		y_value_type TEXT NOT NULL,
		day_count TEXT,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_curves_set ON curves(set_id);

	CREATE TABLE IF NOT EXISTS curve_nodes (
		curve_id TEXT NOT NULL REFERENCES curves(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		x REAL NOT NULL,
		y TEXT NOT NULL,
		PRIMARY KEY (curve_id, position)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WRITES
// =============================================================================

// SaveCurveSet stores a named set of curves. Names are unique; saving a
// taken name returns ErrDuplicateSet.
func (s *Store) SaveCurveSet(ctx context.Context, name string, valuation time.Time, curves []*market.Curve) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM curve_sets WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return "", err
	}
	if exists > 0 {
		return "", fmt.Errorf("%w: %s", ErrDuplicateSet, name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	setID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO curve_sets (id, name, valuation_date, created_at) VALUES (?, ?, ?, ?)`,
		setID, name, valuation.UTC().Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}

	for i, curve := range curves {
		curveID := uuid.NewString()
		meta := curve.Metadata()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO curves (id, set_id, name, x_value_type, y_value_type, day_count, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			curveID, setID, string(meta.Name), string(meta.XValueType), string(meta.YValueType), meta.DayCount, i)
		if err != nil {
			return "", err
		}
		for j, node := range curve.Nodes() {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO curve_nodes (curve_id, position, x, y) VALUES (?, ?, ?, ?)`,
				curveID, j, node.X, node.Y.String())
			if err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return setID, nil
}

// DeleteCurveSet removes a set and its curves by name.
func (s *Store) DeleteCurveSet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM curve_sets WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSetNotFound, name)
	}
	return nil
}

// =============================================================================
// READS
// =============================================================================

// GetCurveSet loads a set and all of its curves by name.
func (s *Store) GetCurveSet(ctx context.Context, name string) (*CurveSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := &CurveSet{Name: name}
	var valuation string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, valuation_date FROM curve_sets WHERE name = ?`, name).Scan(&set.ID, &valuation)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	if set.ValuationDate, err = time.Parse(time.RFC3339, valuation); err != nil {
		return nil, fmt.Errorf("corrupt valuation date for set %s: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, x_value_type, y_value_type, day_count FROM curves WHERE set_id = ? ORDER BY position`,
		set.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type curveRow struct {
		id   string
		meta market.CurveMetadata
	}
	var curveRows []curveRow
	for rows.Next() {
		var cr curveRow
		var cname, xvt, yvt string
		var dayCount sql.NullString
		if err := rows.Scan(&cr.id, &cname, &xvt, &yvt, &dayCount); err != nil {
			return nil, err
		}
		cr.meta = market.CurveMetadata{
			Name:       market.CurveName(cname),
			XValueType: market.ValueType(xvt),
			YValueType: market.ValueType(yvt),
			DayCount:   dayCount.String,
		}
		curveRows = append(curveRows, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, cr := range curveRows {
		curve, err := s.loadCurve(ctx, cr.id, cr.meta)
		if err != nil {
			return nil, err
		}
		set.Curves = append(set.Curves, curve)
	}
	return set, nil
}

func (s *Store) loadCurve(ctx context.Context, curveID string, meta market.CurveMetadata) (*market.Curve, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT x, y FROM curve_nodes WHERE curve_id = ? ORDER BY position`, curveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var xs []float64
	var ys []decimal.Decimal
	for rows.Next() {
		var x float64
		var y string
		if err := rows.Scan(&x, &y); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(y)
		if err != nil {
			return nil, fmt.Errorf("corrupt node value %q for curve %s: %w", y, meta.Name, err)
		}
		xs = append(xs, x)
		ys = append(ys, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return market.NewCurve(meta, xs, ys)
}

// ListCurveSets returns summary rows for all stored sets, newest first.
func (s *Store) ListCurveSets(ctx context.Context) ([]CurveSetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT cs.id, cs.name, cs.valuation_date, cs.created_at, COUNT(c.id)
		FROM curve_sets cs
		LEFT JOIN curves c ON c.set_id = cs.id
		GROUP BY cs.id
		ORDER BY cs.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []CurveSetInfo
	for rows.Next() {
		var info CurveSetInfo
		var valuation, created string
		if err := rows.Scan(&info.ID, &info.Name, &valuation, &created, &info.CurveCount); err != nil {
			return nil, err
		}
		if info.ValuationDate, err = time.Parse(time.RFC3339, valuation); err != nil {
			return nil, err
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
