package boltstore

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "fracseq.bolt")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestConfig(t *testing.T) {
	c := Config{}
	require.Error(t, c.CheckAndSetDefaults())
	c = Config{Path: filepath.Join(t.TempDir(), "missing", "x.bolt")}
	require.Error(t, c.CheckAndSetDefaults())
	c = Config{Path: filepath.Join(t.TempDir(), "x.bolt")}
	require.NoError(t, c.CheckAndSetDefaults())
	require.Equal(t, "positions", c.Bucket)
	require.Equal(t, defaultTimeout, c.Timeout)
}

func TestKey(t *testing.T) {
	key := Key(fracseq.NewPosition(3, 2))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 2}, key)
	require.Equal(t, key, Key(fracseq.NewPosition(6, 4)))
	pos, err := PositionFromKey(Key(fracseq.NewPosition(math.MaxUint64, 7)))
	require.NoError(t, err)
	require.Equal(t, fracseq.NewPosition(math.MaxUint64, 7), pos)
	_, err = PositionFromKey([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seq := fracseq.New[string]()
	for _, e := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		seq.Push(e)
	}
	seq.Insert(0, "0")
	seq.Remove(3)
	require.NoError(t, Save(ctx, s, seq, seqio.StringCodec{}))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, seq.Len(), n)
	// byte order of keys puts 10/1 and 11/1 before 2/1; Load has to re-sort
	back, err := Load(ctx, s, seqio.StringCodec{})
	require.NoError(t, err)
	require.Equal(t, seq.Elements(), back.Elements())
	//
	require.NoError(t, Save(ctx, s, fracseq.New[string](), seqio.StringCodec{}))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestPutAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Put(ctx, fracseq.NewPosition(1, 1), []byte("A")))
	require.NoError(t, s.Put(ctx, fracseq.NewPosition(2, 1), []byte("B")))
	require.NoError(t, s.Put(ctx, fracseq.NewPosition(3, 2), []byte("X")))
	require.NoError(t, s.Put(ctx, fracseq.NewPosition(4, 2), []byte("BB")))
	back, err := Load(ctx, s, seqio.StringCodec{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "X", "BB"}, back.Elements())
	require.NoError(t, s.Delete(ctx, fracseq.NewPosition(6, 4)))
	require.NoError(t, s.Delete(ctx, fracseq.NewPosition(9, 1)))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestCancelledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.Put(ctx, fracseq.DefaultPosition(), nil))
	_, err := Load(ctx, s, seqio.StringCodec{})
	require.Error(t, err)
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.bolt")
	s, err := Open(Config{Path: path, Bucket: "items"})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, fracseq.DefaultPosition(), []byte(`{"qty":3}`)))
	require.NoError(t, s.Close())
	//
	s, err = Open(Config{Path: path, Bucket: "items"})
	require.NoError(t, err)
	defer s.Close()
	type item struct {
		Qty int `json:"qty"`
	}
	back, err := Load(ctx, s, seqio.JSONCodec[item]{})
	require.NoError(t, err)
	e, ok := back.First()
	require.True(t, ok)
	require.Equal(t, 3, e.Qty)
}
