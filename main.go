package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/CanPacis/abi/bf_errors"
	"github.com/CanPacis/abi/bf_io"
	"github.com/CanPacis/abi/config"
	"github.com/CanPacis/abi/debugger"
	"github.com/CanPacis/abi/engine"
	"github.com/CanPacis/abi/parser"
)

type CLI struct {
	File     string `short:"f" help:"Interpret a brainfuck script instead of reading one line from stdin." type:"path"`
	Config   string `help:"Configuration file (default ./abi.toml when present)." type:"path"`
	Memory   int    `help:"Tape size in cells (default 30000)."`
	MaxLine  int    `name:"max-line" help:"Longest interactive line in bytes, newline included (default 1024)."`
	Trace    bool   `help:"Write every dispatched instruction to stderr."`
	Dump     string `help:"Write the parsed tree to stderr before running: text, yaml or cbor."`
	State    bool   `help:"Write the tape state to stderr after running, in the dump format (text by default)."`
	LoadTree string `name:"load-tree" help:"Run a tree dumped in yaml or cbor instead of parsing a program." type:"existingfile"`
	Verbose  int    `short:"v" type:"counter" help:"Increase log verbosity."`
	LogFile  string `name:"log-file" help:"Write logs to this file instead of stderr." type:"path"`
}

func log() commonlog.Logger {
	return commonlog.GetLogger("abi.cli")
}

func fail(err error) {
	if fileError, ok := err.(*bf_errors.FileError); ok {
		fileError.Write(os.Stderr)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// settings merges the flags that were given over the configuration file.
func settings(cli *CLI) (*config.Config, error) {
	c, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.Memory != 0 {
		c.MemorySize = cli.Memory
	}
	if cli.MaxLine != 0 {
		c.MaxLine = cli.MaxLine
	}
	if len(cli.Dump) != 0 {
		c.Dump = cli.Dump
	}
	if cli.Verbose != 0 {
		c.Verbosity = cli.Verbose
	}
	c.Trace = c.Trace || cli.Trace

	if err := c.Validate(); err != nil {
		return nil, bf_errors.CreateConfigError(err, "command line")
	}

	return c, nil
}

func loadTree(filePath string) (*parser.Tree, error) {
	format := debugger.CBOR
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		format = debugger.YAML
	}

	source, closeTree, err := bf_io.OpenScript(filePath)
	if err != nil {
		return nil, bf_errors.CreateUnreadableFileError(err, filePath)
	}
	defer closeTree()

	tree, err := debugger.LoadTree(source, format)
	if err != nil {
		return nil, bf_errors.CreateError(err, bf_errors.UncaughtError, filePath)
	}

	return tree, nil
}

func main() {
	cli := CLI{}
	kong.Parse(&cli,
		kong.Name("abi"),
		kong.Description("A tree walking brainfuck interpreter. Without --file one line of stdin is read and run."),
		kong.UsageOnError(),
	)

	c, err := settings(&cli)
	if err != nil {
		fail(err)
	}

	if len(cli.LogFile) != 0 {
		commonlog.Configure(c.Verbosity, &cli.LogFile)
	} else {
		commonlog.Configure(c.Verbosity, nil)
	}
	if len(c.Path) != 0 {
		log().Infof("configuration read from %s", c.Path)
	}

	dumper := debugger.NewDebugger(os.Stderr, c.DumpFormat())
	options := engine.EngineOptions{
		MemorySize: c.MemorySize,
		IO:         bf_io.NewRuntimeIO(os.Stdout, os.Stderr, os.Stdin),
	}
	if c.Trace {
		options.Debugger = dumper
	}

	e := engine.NewEngine(options)
	defer e.Release()

	var tree *parser.Tree
	switch {
	case len(cli.LoadTree) != 0:
		tree, err = loadTree(cli.LoadTree)
		if err != nil {
			fail(err)
		}
	case len(cli.File) != 0:
		if _, err := os.Stat(cli.File); err != nil {
			fail(bf_errors.CreateUnreadableFileError(err, cli.File))
		}
		source, closeScript, err := bf_io.OpenScript(cli.File)
		if err != nil {
			fail(bf_errors.CreateUnreadableFileError(err, cli.File))
		}
		tree = parser.NewParser(cli.File).Parse(source)
		closeScript()
	default:
		e.IO.Writer.WriteString(c.Prompt)
		e.IO.Flush()
		line, err := e.IO.ReadLine(c.MaxLine)
		if err != nil {
			log().Warningf("%s", err)
		}
		tree = parser.BuildString(line)
		fmt.Fprintln(e.IO.Err, tree.Source())
	}
	defer tree.Release()

	if err := dumper.Tree(tree); err != nil {
		log().Errorf("%s", err)
	}

	e.Execute(tree)

	if cli.State {
		if dumper.Format == debugger.None {
			dumper.Format = debugger.Text
		}
		if err := dumper.State(e.Context); err != nil {
			log().Errorf("%s", err)
		}
	}
}
