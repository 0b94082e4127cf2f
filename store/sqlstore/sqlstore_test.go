package sqlstore

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/gravitational/trace"
	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{
		DBPath: filepath.Join(t.TempDir(), "db", "fracseq.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestConfig(t *testing.T) {
	c := Config{DBPath: "x.db"}
	require.NoError(t, c.CheckAndSetDefaults())
	require.Equal(t, "positions", c.Table)
	//
	c = Config{}
	require.Error(t, c.CheckAndSetDefaults())
	c = Config{DBPath: "x.db", Table: "x; DROP TABLE y"}
	require.Error(t, c.CheckAndSetDefaults())
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seq := fracseq.New[string]()
	seq.Push("A")
	seq.Push("B")
	seq.Push("C")
	seq.Insert(1, "AB")
	seq.Remove(2)
	require.NoError(t, Save(ctx, s, seq, seqio.StringCodec{}))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	//
	back, err := Load(ctx, s, seqio.StringCodec{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "AB", "C"}, back.Elements())
	pos, _ := back.PositionFrom(1)
	require.Equal(t, fracseq.NewPosition(3, 2), pos)
	// saving replaces the previous content
	require.NoError(t, Save(ctx, s, fracseq.New[string](), seqio.StringCodec{}))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestPutDoesNotTouchSiblings(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seq := fracseq.New[string]()
	for _, e := range []string{"A", "B"} {
		pos := seq.Push(e)
		require.NoError(t, s.Put(ctx, pos, []byte(e)))
	}
	pos := seq.Insert(1, "X")
	require.NoError(t, s.Put(ctx, pos, []byte("X")))
	// equal positions share a row
	require.NoError(t, s.Put(ctx, fracseq.NewPosition(4, 2), []byte("BB")))
	back, err := Load(ctx, s, seqio.StringCodec{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "X", "BB"}, back.Elements())
	//
	require.NoError(t, s.Delete(ctx, fracseq.NewPosition(6, 4)))
	require.NoError(t, s.Delete(ctx, fracseq.NewPosition(7, 1)))
	back, err = Load(ctx, s, seqio.StringCodec{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "BB"}, back.Elements())
}

func TestLoadOrdersExactly(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	// both positions are 1.0 as float64 and exceed the int64 range
	hi := fracseq.NewPosition(math.MaxUint64-1, math.MaxUint64)
	lo := fracseq.NewPosition(math.MaxUint64-2, math.MaxUint64-1)
	require.NoError(t, s.Put(ctx, hi, []byte("hi")))
	require.NoError(t, s.Put(ctx, lo, []byte("lo")))
	require.NoError(t, s.Put(ctx, fracseq.NewPosition(1, 2), []byte("half")))
	back, err := Load(ctx, s, seqio.StringCodec{})
	require.NoError(t, err)
	require.Equal(t, []string{"half", "lo", "hi"}, back.Elements())
	pos, _ := back.PositionFrom(2)
	require.True(t, pos.Equal(hi))
}

func TestLoadDecodeError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Put(ctx, fracseq.DefaultPosition(), []byte("{")))
	_, err := Load(ctx, s, seqio.JSONCodec[int]{})
	require.Error(t, err)
}

func TestLoadRejectsCorruptTable(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	_, err := s.database.ExecContext(ctx,
		"INSERT INTO positions (numerator, denominator, payload) VALUES (0, 1, 'min')")
	require.NoError(t, err)
	_, err = Load(ctx, s, seqio.StringCodec{})
	require.True(t, errors.Is(trace.Unwrap(err), fracseq.ErrIllegalArguments), "got %v", err)
}
