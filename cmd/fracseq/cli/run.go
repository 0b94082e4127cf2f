package cli

import (
	"context"

	"github.com/gravitational/trace"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Run parses args and executes the selected subcommand
func Run(fs Application, args []string) error {
	cmd, err := fs.Parse(args)
	if err != nil {
		return err
	}
	level := tracing.LevelError
	if *fs.Debug {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	tracing.Select("fracseq").SetTraceLevel(level)
	p := newPrinter(fs.Out, !*fs.NoColor && isTerminal(fs.Out))
	ctx := context.Background()

	switch cmd {
	case fs.FractionCmd.FullCommand():
		return fraction(p, *fs.FractionCmd.N)
	case fs.AvgCmd.FullCommand():
		return avg(p)
	case fs.SQLiteCmd.FullCommand():
		return saveSQLite(ctx, p, *fs.SQLiteCmd.DB, *fs.SQLiteCmd.N)
	case fs.BoltCmd.FullCommand():
		return saveBolt(ctx, p, *fs.BoltCmd.DB, *fs.BoltCmd.N)
	case fs.ExportCmd.FullCommand():
		return export(p, *fs.ExportCmd.Format)
	case fs.TextCmd.FullCommand():
		return wrapText(p, *fs.TextCmd.File, *fs.TextCmd.Width)
	case fs.HTMLCmd.FullCommand():
		return renderHTML(p, *fs.HTMLCmd.All)
	case fs.DotCmd.FullCommand():
		return renderDot(p)
	}
	return trace.NotImplemented("command %q is not implemented", cmd)
}
