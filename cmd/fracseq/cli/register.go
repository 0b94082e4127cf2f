package cli

import (
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

// RegisterCommands registers all fracseq flags, arguments and subcommands
func RegisterCommands(app *kingpin.Application) Application {
	fs := Application{
		Application: app,
		Out:         os.Stdout,
	}

	fs.Debug = app.Flag("debug", "Enable debug tracing.").Envar("FRACSEQ_DEBUG").Bool()
	fs.NoColor = app.Flag("no-color", "Do not color the output.").Bool()

	fs.FractionCmd.CmdClause = app.Command("fraction", "Insert repeatedly after the element inserted last and print the resulting positions.")
	fs.FractionCmd.N = fs.FractionCmd.Flag("count", "Number of insertions.").Short('n').Default("100000").Int()

	fs.AvgCmd.CmdClause = app.Command("avg", "Insert float midpoints until they are no longer distinguishable.")

	fs.SQLiteCmd.CmdClause = app.Command("sqlite", "Build a sequence and store it in a SQLite database.")
	fs.SQLiteCmd.DB = fs.SQLiteCmd.Flag("db", "Path of the database file.").Default("fracseq.db").String()
	fs.SQLiteCmd.N = fs.SQLiteCmd.Flag("count", "Number of insertions.").Short('n').Default("100000").Int()

	fs.BoltCmd.CmdClause = app.Command("bolt", "Build a sequence and follow its changes into a bolt database.")
	fs.BoltCmd.DB = fs.BoltCmd.Flag("db", "Path of the database file.").Default("fracseq.bolt").String()
	fs.BoltCmd.N = fs.BoltCmd.Flag("count", "Number of insertions.").Short('n').Default("10000").Int()

	fs.ExportCmd.CmdClause = app.Command("export", "Serialize a sample sequence, including a tombstone.")
	fs.ExportCmd.Format = fs.ExportCmd.Flag("format", "Output format: json or yaml.").Short('f').Default("json").Enum("json", "yaml")

	fs.TextCmd.CmdClause = app.Command("text", "Segment a text file at line-break opportunities and wrap it.")
	fs.TextCmd.File = fs.TextCmd.Arg("file", "UTF-8 text file.").Required().ExistingFile()
	fs.TextCmd.Width = fs.TextCmd.Flag("width", "Line width, defaults to the terminal width.").Short('w').Int()

	fs.HTMLCmd.CmdClause = app.Command("html", "Render a sample sequence as an ordered HTML list.")
	fs.HTMLCmd.All = fs.HTMLCmd.Flag("all", "Include tombstones.").Bool()

	fs.DotCmd.CmdClause = app.Command("dot", "Render a sample sequence as a Graphviz digraph.")

	return fs
}
