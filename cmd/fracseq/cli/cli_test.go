package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/fracseq"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	fs := RegisterCommands(kingpin.New("fracseq", ""))
	var out bytes.Buffer
	fs.Out = &out
	require.NoError(t, Run(fs, append([]string{"--no-color"}, args...)))
	return out.String()
}

func TestFraction(t *testing.T) {
	out := run(t, "fraction", "-n", "10")
	require.Contains(t, out, "19/10")
	require.Contains(t, out, "21/11")
	require.Contains(t, out, "2/1")
	require.Contains(t, out, "13 elements after 10 insertions")
}

func TestFractionSequence(t *testing.T) {
	seq := fractionSequence(100)
	require.Equal(t, 103, seq.Len())
	pos, ok := seq.PositionFrom(100)
	require.True(t, ok)
	require.Equal(t, fracseq.NewPosition(201, 101), pos)
	require.NoError(t, seq.Check())
}

func TestMidpoints(t *testing.T) {
	n32, seq32 := midpoints[float32]()
	require.Equal(t, 24, n32)
	require.Equal(t, seq32[0], seq32[1])
	n64, _ := midpoints[float64]()
	require.Equal(t, 53, n64)
	out := run(t, "avg")
	require.Contains(t, out, "Iterations: 24")
	require.Contains(t, out, "Iterations: 53")
}

func TestExport(t *testing.T) {
	out := run(t, "export")
	seq, err := seqio.DecodeJSON[Person](strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, []Person{{"Anton"}, {"Christoph"}, {"Dora"}}, seq.Elements())
	require.Equal(t, 4, seq.Slots())
	//
	out = run(t, "export", "--format", "yaml")
	seq, err = seqio.DecodeYAML[Person](strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, []Person{{"Anton"}, {"Christoph"}, {"Dora"}}, seq.Elements())
}

func TestRender(t *testing.T) {
	out := run(t, "html")
	require.Contains(t, out, "Christoph")
	require.NotContains(t, out, "tombstone")
	out = run(t, "html", "--all")
	require.Contains(t, out, `class="tombstone"`)
	out = run(t, "dot")
	require.True(t, strings.HasPrefix(out, "strict digraph {"))
	require.Contains(t, out, "Dora")
}

func TestPersist(t *testing.T) {
	dir := t.TempDir()
	out := run(t, "sqlite", "--db", filepath.Join(dir, "fraction.db"), "-n", "5")
	require.Contains(t, out, "8 rows stored")
	out = run(t, "bolt", "--db", filepath.Join(dir, "fraction.bolt"), "-n", "997")
	require.Contains(t, out, "1,000 keys stored")
}

func TestText(t *testing.T) {
	name := filepath.Join(t.TempDir(), "fox.txt")
	require.NoError(t, os.WriteFile(name, []byte("The quick brown fox jumps over the lazy dog"), 0644))
	out := run(t, "text", name, "--width", "20")
	require.Contains(t, out, "The quick brown fox\n")
	require.Contains(t, out, "jumps over the lazy\n")
	require.Contains(t, out, "in 3 lines of width 20")
}

func TestUnknownCommand(t *testing.T) {
	fs := RegisterCommands(kingpin.New("fracseq", ""))
	fs.Out = &bytes.Buffer{}
	require.Error(t, Run(fs, []string{"nope"}))
}

func TestLineWidth(t *testing.T) {
	for _, tc := range []struct{ columns, width int }{
		{120, 110},
		{66, 56},
		{65, 60},
		{31, 26},
		{30, 30},
	} {
		require.Equal(t, tc.width, lineWidthFor(tc.columns), "columns=%d", tc.columns)
	}
}
