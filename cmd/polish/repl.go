package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/jpschroeder/polish"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// repl reads lines, runs them in one session and prints one result per
// line.
type repl struct {
	session *polish.Session
	cfg     *Config
	out     io.Writer
	dumpAST bool

	resultLabel *color.Color
	errorLabel  *color.Color
}

func newREPL(session *polish.Session, cfg *Config, out io.Writer, colored bool) *repl {
	r := &repl{
		session:     session,
		cfg:         cfg,
		out:         out,
		resultLabel: color.New(color.FgGreen),
		errorLabel:  color.New(color.FgRed, color.Bold),
	}
	if !colored {
		r.resultLabel.DisableColor()
		r.errorLabel.DisableColor()
	}
	return r
}

// handle processes one input line. It returns false when the user asked to
// quit.
func (r *repl) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return true
	case ".quit", ".exit":
		return false
	case ".vars":
		r.printVars()
		return true
	case ".reset":
		r.session.Reset()
		r.cfg.Apply(r.session.Env())
		return true
	}

	if r.dumpAST {
		if node, err := r.session.Parse(line); err == nil {
			spew.Fdump(r.out, node)
		}
	}

	val, err := r.session.Run(line)
	if err != nil {
		if polish.IsNotImplemented(err) {
			glog.Warningf("unimplemented form in %q", line)
		}
		fmt.Fprintf(r.out, "%s %v\n", r.errorLabel.Sprint("Error:"), err)
		return true
	}
	fmt.Fprintf(r.out, "%s %s\n", r.resultLabel.Sprint("Result:"), polish.FormatNumber(val))
	return true
}

func (r *repl) printVars() {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Name", "Value"})
	for _, b := range r.session.Env().Variables() {
		table.Append([]string{b.Name, polish.FormatNumber(b.Value)})
	}
	for _, name := range r.session.Env().Functions() {
		f, _ := r.session.Env().Func(name)
		table.Append([]string{name, fmt.Sprintf("-> %v", f)})
	}
	table.Render()
}

// runLines handles every line of in without prompting, for redirected
// input.
func (r *repl) runLines(in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		// lines have no length limit, the last one may lack a newline
		line, err := reader.ReadString('\n')
		if line != "" && !r.handle(line) {
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
	}
}

// runInteractive prompts with line editing until EOF, Ctrl-C or .quit.
func (r *repl) runInteractive() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if r.cfg.HistoryFile != "" {
		if f, err := os.Open(r.cfg.HistoryFile); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				glog.Warningf("reading history %s: %v", r.cfg.HistoryFile, err)
			}
			f.Close()
		}
	}

	for {
		input, err := line.Prompt(r.cfg.Prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.out)
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !r.handle(input) {
			break
		}
	}

	if r.cfg.HistoryFile != "" {
		f, err := os.Create(r.cfg.HistoryFile)
		if err != nil {
			return errors.Wrapf(err, "writing history %s", r.cfg.HistoryFile)
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			return errors.Wrapf(err, "writing history %s", r.cfg.HistoryFile)
		}
	}
	return nil
}
