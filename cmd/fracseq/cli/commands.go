package cli

import (
	"io"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Application represents the command-line "fracseq" application and contains
// definitions of all its flags, arguments and subcommands
type Application struct {
	*kingpin.Application
	// Out receives the output of all commands
	Out io.Writer
	// Debug sets the trace level to debug
	Debug *bool
	// NoColor turns off colored output
	NoColor *bool
	// FractionCmd inserts repeatedly at the same spot
	FractionCmd FractionCmd
	// AvgCmd shows why float midpoints do not work as positions
	AvgCmd AvgCmd
	// SQLiteCmd persists a sequence in a SQLite database
	SQLiteCmd StoreCmd
	// BoltCmd persists a sequence in a bolt database, through a journal
	BoltCmd StoreCmd
	// ExportCmd serializes a sample sequence
	ExportCmd ExportCmd
	// TextCmd segments and wraps a text file
	TextCmd TextCmd
	// HTMLCmd renders a sample sequence as HTML
	HTMLCmd HTMLCmd
	// DotCmd renders a sample sequence as a Graphviz graph
	DotCmd DotCmd
}

// FractionCmd inserts N elements, each after the one inserted before.
type FractionCmd struct {
	*kingpin.CmdClause
	// N is the number of insertions
	N *int
}

// AvgCmd exhausts float32 and float64 midpoints.
type AvgCmd struct {
	*kingpin.CmdClause
}

// StoreCmd builds a sequence like FractionCmd and persists it.
type StoreCmd struct {
	*kingpin.CmdClause
	// DB is the path of the database file
	DB *string
	// N is the number of insertions
	N *int
}

// ExportCmd serializes a sample sequence.
type ExportCmd struct {
	*kingpin.CmdClause
	// Format is either json or yaml
	Format *string
}

// TextCmd segments and wraps a text file.
type TextCmd struct {
	*kingpin.CmdClause
	// File is the text file to load
	File *string
	// Width is the line width; 0 means terminal width
	Width *int
}

// HTMLCmd renders a sample sequence as an ordered list.
type HTMLCmd struct {
	*kingpin.CmdClause
	// All includes tombstones
	All *bool
}

// DotCmd renders a sample sequence in DOT format.
type DotCmd struct {
	*kingpin.CmdClause
}
