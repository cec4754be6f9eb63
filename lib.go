package tachyon

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MaxLineSize is the longest script line Run accepts.
const MaxLineSize = 64 << 20

// Runner evaluates calculator scripts: one form per line, blank lines and
// lines starting with ';' ignored.
type Runner struct {
	Table Table
	// MaxDepth limits call nesting; zero means DefaultMaxDepth and a
	// negative value means no limit.
	MaxDepth int
	Out      io.Writer
	// Trace, if set, is called with every parsed form before evaluation.
	Trace func(*Node)
}

func (r *Runner) parse(line string) (*Node, error) {
	p := NewParser(strings.NewReader(line))
	switch {
	case r.MaxDepth > 0:
		p.SetMaxDepth(r.MaxDepth)
	case r.MaxDepth < 0:
		p.SetMaxDepth(0)
	}
	return p.Parse()
}

// EvalLine parses and evaluates a single form.
func (r *Runner) EvalLine(line string) (float64, error) {
	node, err := r.parse(line)
	if err != nil {
		return 0, err
	}
	if r.Trace != nil {
		r.Trace(node)
	}
	return r.Table.Eval(node)
}

// Run evaluates every form read from in and writes each result to Out on
// its own line. It stops at the first error, reported as name:line.
func (r *Runner) Run(in io.Reader, name string) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		v, err := r.EvalLine(line)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", name, lineno)
		}
		if _, err := fmt.Fprintln(r.Out, FormatNumber(v)); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.Wrap(sc.Err(), name)
}

// RunFS runs every file in the root directory of hfs in name order.
func (r *Runner) RunFS(hfs http.FileSystem) error {
	dir, err := hfs.Open("/")
	if err != nil {
		return errors.Wrap(err, "open script directory")
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return errors.Wrap(err, "list script directory")
	}
	sort.Slice(fis, func(i, j int) bool {
		return fis[i].Name() < fis[j].Name()
	})
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		if err := r.runFile(hfs, fi.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runFile(hfs http.FileSystem, name string) error {
	f, err := hfs.Open(path.Join("/", name))
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return r.Run(f, name)
}

// Run evaluates the script read from in with the given table.
func Run(in io.Reader, name string, table Table, w io.Writer) error {
	r := &Runner{Table: table, Out: w}
	return r.Run(in, name)
}

// RunFS evaluates every script in the root directory of hfs.
func RunFS(hfs http.FileSystem, table Table, w io.Writer) error {
	r := &Runner{Table: table, Out: w}
	return r.RunFS(hfs)
}
