package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"
	"github.com/tachyon-calc/tachyon"
)

const historyFile = ".tachyon_history"

var (
	maxDepth = flag.Int("depth", tachyon.DefaultMaxDepth, "maximum call nesting; 0 means no limit")
	dumpAST  = flag.Bool("ast", false, "dump every parsed expression before its result")
	prompt   = flag.String("prompt", ">>> ", "interactive prompt")
	noMath   = flag.Bool("nomath", false, "use only the built-in operators")
	dir      = flag.String("dir", "", "run every script in `directory`")
)

const helpText = `Enter one expression per line, e.g. (+ 1 (* 2 3)).
  :funcs   list the available operators
  :help    show this text
  :quit    exit (or Ctrl-D)
`

var (
	red    = color.New(color.FgRed).SprintFunc()
	dumper = spew.ConfigState{
		Indent:                  "  ",
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
)

func newRunner(out io.Writer) *tachyon.Runner {
	table := tachyon.NewTable()
	if *noMath {
		table = tachyon.Builtins()
	}
	depth := *maxDepth
	if depth == 0 {
		depth = -1
	}
	r := &tachyon.Runner{
		Table:    table,
		MaxDepth: depth,
		Out:      out,
	}
	if *dumpAST {
		r.Trace = func(node *tachyon.Node) {
			dumper.Fdump(out, node)
		}
	}
	return r
}

func printFuncs(w io.Writer, t tachyon.Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Arity", "Description"})
	for _, name := range t.Names() {
		fn := t[name]
		arity := "any"
		if fn.Arity != tachyon.Variadic {
			arity = strconv.Itoa(fn.Arity)
		}
		table.Append([]string{name, arity, fn.Doc})
	}
	table.Render()
}

// command runs a REPL command and reports whether the REPL should exit.
func command(r *tachyon.Runner, line string) bool {
	switch strings.ToLower(line) {
	case ":quit", ":q":
		return true
	case ":funcs":
		printFuncs(r.Out, r.Table)
	case ":help":
		fmt.Fprint(r.Out, helpText)
	default:
		fmt.Fprintln(os.Stderr, red("unknown command "+line+"; type :help"))
	}
	return false
}

func repl(r *tachyon.Runner) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(*prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if command(r, line) {
				return
			}
			continue
		}

		v, err := r.EvalLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err))
			continue
		}
		fmt.Fprintln(r.Out, tachyon.FormatNumber(v))
	}
}

func runFile(r *tachyon.Runner, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Run(f, name)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tachyon: ")
	flag.Parse()

	r := newRunner(os.Stdout)

	if *dir != "" {
		if flag.NArg() > 0 {
			flag.Usage()
			os.Exit(2)
		}
		if err := r.RunFS(http.Dir(*dir)); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			fmt.Println("tachyon calculator; :help for help, Ctrl-D to exit")
			repl(r)
			return
		}
		if err := r.Run(os.Stdin, "<stdin>"); err != nil {
			log.Fatal(err)
		}
		return
	}

	for _, name := range flag.Args() {
		if err := runFile(r, name); err != nil {
			log.Fatal(err)
		}
	}
}
