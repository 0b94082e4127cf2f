// Package sqlstore persists sequences in a SQLite table.
//
// Every element is stored as a row (numerator, denominator, payload). As
// positions of existing elements never change, inserting an element into a
// sequence translates to inserting a single row, without updating any of its
// siblings. Tombstones are not stored.
//
// Numerators and denominators are uint64 values, which SQLite cannot store
// natively. The columns hold the int64 bit patterns of the values instead, so
// the database must not be used to order rows; Load sorts them in memory.
package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/gravitational/trace"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers driver "sqlite3"
	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fracseq'
func tracer() tracing.Trace {
	return tracing.Select("fracseq")
}

// Config defines the store configuration.
type Config struct {
	// DBPath specifies the database location.
	DBPath string
	// Table is the name of the table holding the rows. Defaults to "positions".
	Table string
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CheckAndSetDefaults validates this configuration object.
// Config values that were not specified will be set to their default values if
// available.
func (c *Config) CheckAndSetDefaults() error {
	var errors []error
	if c.DBPath == "" {
		errors = append(errors, trace.BadParameter("sqlite database path must be provided"))
	}
	if c.Table == "" {
		c.Table = defaultTable
	}
	if !tableName.MatchString(c.Table) {
		errors = append(errors, trace.BadParameter("invalid table name %q", c.Table))
	}
	return trace.NewAggregate(errors...)
}

// Store is a SQLite backed store for the elements of a sequence.
type Store struct {
	config   Config
	database *sqlx.DB
}

// row defines an sql row of the positions table.
type row struct {
	Numerator   int64  `db:"numerator"`
	Denominator int64  `db:"denominator"`
	Payload     []byte `db:"payload"`
}

func newRow(pos fracseq.Position, payload []byte) row {
	num, denom := pos.Reduced().Pair()
	return row{
		Numerator:   int64(num),
		Denominator: int64(denom),
		Payload:     payload,
	}
}

func (r row) position() fracseq.Position {
	return fracseq.NewPosition(uint64(r.Numerator), uint64(r.Denominator))
}

// Open connects to the database at config.DBPath and creates the positions
// table if it does not exist.
func Open(ctx context.Context, config Config) (*Store, error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	dir := filepath.Dir(config.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	database, err := sqlx.ConnectContext(ctx, "sqlite3", config.DBPath)
	if err != nil {
		return nil, trace.Wrap(err, "failed to connect to sqlite database at %s", config.DBPath)
	}
	s := &Store{config: config, database: database}
	if _, err := database.ExecContext(ctx, s.stmt(createTable)); err != nil {
		database.Close()
		return nil, trace.Wrap(err, "failed to create table %s", config.Table)
	}
	tracer().Debugf("sqlstore: opened %s, table %s", config.DBPath, config.Table)
	return s, nil
}

func (s *Store) stmt(template string) string {
	return fmt.Sprintf(template, s.config.Table)
}

// Put stores payload at position pos, replacing a payload already stored at
// an equal position.
func (s *Store) Put(ctx context.Context, pos fracseq.Position, payload []byte) error {
	if _, err := s.database.NamedExecContext(ctx, s.stmt(upsertRow), newRow(pos, payload)); err != nil {
		return trace.Wrap(err)
	}
	return nil
}

// Delete removes the row at position pos. Deleting an unknown position is not
// an error.
func (s *Store) Delete(ctx context.Context, pos fracseq.Position) error {
	r := newRow(pos, nil)
	if _, err := s.database.ExecContext(ctx, s.stmt(deleteRow), r.Numerator, r.Denominator); err != nil {
		return trace.Wrap(err)
	}
	return nil
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.database.GetContext(ctx, &n, s.stmt(countRows)); err != nil {
		return 0, trace.Wrap(err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.database.Close()
}

// Save replaces the content of the store with the elements of seq, in a
// single transaction.
func Save[T any](ctx context.Context, s *Store, seq *fracseq.Sequence[T], codec seqio.Codec[T]) (err error) {
	tx, err := s.database.BeginTxx(ctx, nil)
	if err != nil {
		return trace.Wrap(err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, s.stmt(deleteAll)); err != nil {
		return trace.Wrap(err)
	}
	upsert := s.stmt(upsertRow)
	cursor := seq.NewCursor()
	for {
		num, denom, e, ok := cursor.Next()
		if !ok {
			break
		}
		payload, err := codec.Encode(*e)
		if err != nil {
			return trace.Wrap(err, "failed to encode element at %d/%d", num, denom)
		}
		r := newRow(fracseq.NewPosition(num, denom), payload)
		if _, err = tx.NamedExecContext(ctx, upsert, r); err != nil {
			return trace.Wrap(err)
		}
	}
	if err = tx.Commit(); err != nil {
		return trace.Wrap(err)
	}
	tracer().Debugf("sqlstore: saved %d elements", seq.Len())
	return nil
}

// Load reads all rows of the store into a new sequence. Rows are ordered by
// exact comparison of their positions.
func Load[T any](ctx context.Context, s *Store, codec seqio.Codec[T]) (*fracseq.Sequence[T], error) {
	var rows []row
	if err := s.database.SelectContext(ctx, &rows, s.stmt(selectAll)); err != nil {
		return nil, trace.Wrap(err)
	}
	slices.SortFunc(rows, func(a, b row) int {
		return a.position().Compare(b.position())
	})
	slots := make([]fracseq.Slot[T], len(rows))
	for i, r := range rows {
		e, err := codec.Decode(r.Payload)
		if err != nil {
			return nil, trace.Wrap(err, "failed to decode element at %v", r.position())
		}
		slots[i] = fracseq.Occupied(r.position(), e)
	}
	seq, err := fracseq.FromSlots(slots)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return seq, nil
}
