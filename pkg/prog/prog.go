// Package prog provides the entry point of the styled command. It parses the
// command line, sets up logging and output options, and runs the selected
// subcommand.
package prog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/styledstring/styledstring/pkg/logutil"
	"github.com/styledstring/styledstring/pkg/store"
	"github.com/styledstring/styledstring/pkg/styled"
	"github.com/styledstring/styledstring/pkg/vt"
)

var logger = logutil.GetLogger("[prog] ")

type cli struct {
	DB      string `name:"db" type:"path" default:"${db}" help:"Path to the text store."`
	Color   string `enum:"auto,always,never" default:"auto" help:"When to style the output: auto, always or never."`
	Palette string `enum:"truecolor,256" default:"truecolor" help:"Color encoding: truecolor or 256."`
	Links   bool   `help:"Write links as OSC 8 hyperlinks."`
	Log     string `type:"path" help:"File to write debug log to."`

	Render renderCmd `cmd:"" help:"Render a text from a sheet."`
	Runs   runsCmd   `cmd:"" help:"Show the style runs of a text from a sheet."`
	Styles stylesCmd `cmd:"" help:"Show the named styles of a sheet as CSS."`
	Put    putCmd    `cmd:"" help:"Copy a text from a sheet into the store."`
	Get    getCmd    `cmd:"" help:"Render a text from the store."`
	Ls     lsCmd     `cmd:"" help:"List the texts in the store."`
	Rm     rmCmd     `cmd:"" help:"Remove a text from the store."`
}

type exitCode int

// Run parses command-line arguments and runs the selected subcommand. It
// returns the exit status of the program: 0 on success, 1 if the subcommand
// failed and 2 if the arguments could not be parsed.
func Run(fds [3]*os.File, args []string) (exit int) {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("styled"),
		kong.Description("Render, inspect and store styled texts."),
		kong.Writers(fds[1], fds[2]),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
		kong.Vars{"db": defaultDBPath()},
	)
	if err != nil {
		fmt.Fprintln(fds[2], "internal error:", err)
		return 2
	}
	defer func() {
		if r := recover(); r != nil {
			code, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			exit = int(code)
		}
	}()

	ctx, err := parser.Parse(args[1:])
	if err != nil {
		fmt.Fprintln(fds[2], "styled:", err)
		return 2
	}

	if c.Log != "" {
		closeLog, err := logutil.SetOutputFile(c.Log)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open log file:", err)
		} else {
			defer closeLog()
		}
	}

	e := &env{stdout: fds[1], dbPath: c.DB}
	e.styled, e.opts = outputOptions(&c, fds[1])
	logger.Printf("running %s, styled=%v, options=%+v", ctx.Command(), e.styled, e.opts)

	if err := ctx.Run(e); err != nil {
		fmt.Fprintln(fds[2], "styled:", err)
		return 1
	}
	return 0
}

func outputOptions(c *cli, stdout *os.File) (bool, vt.Options) {
	opts := vt.Options{Hyperlinks: c.Links}
	if c.Palette == "256" {
		opts.Palette = vt.XTerm256
	}
	switch c.Color {
	case "always":
		return true, opts
	case "never":
		return false, opts
	}
	fd := stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false, opts
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		opts.NoColor = true
	}
	return true, opts
}

func defaultDBPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "styled", "store.db")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "styled", "store.db")
	}
	return "styled.db"
}

// Passed to the Run method of every subcommand.
type env struct {
	stdout io.Writer
	dbPath string
	styled bool
	opts   vt.Options
}

func (e *env) openStore() (*store.DB, error) {
	if err := os.MkdirAll(filepath.Dir(e.dbPath), 0700); err != nil {
		return nil, err
	}
	return store.Open(e.dbPath)
}

func (e *env) writeText(t styled.Text) {
	if e.styled {
		fmt.Fprintln(e.stdout, vt.Render(t, e.opts))
	} else {
		fmt.Fprintln(e.stdout, t.String())
	}
}
