// Package replshell is an interactive line editor over the driver: each
// line is a JSON-encoded L1 fragment (the contract a hypothetical parser
// would hand `tlrun eval`, see internal/surface/json.go), desugared and
// evaluated against a shell-persistent Environment/Context/Cache triple.
// Grounded on the teacher's internal/repl/repl.go (liner + color texture,
// meta-command dispatch, history file), generalised to this domain.
package replshell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/cache"
	"github.com/translucid-lang/tlcore/internal/desugar"
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/driver"
	"github.com/translucid-lang/tlcore/internal/errors"
	"github.com/translucid-lang/tlcore/internal/eval"
	"github.com/translucid-lang/tlcore/internal/surface"
	"github.com/translucid-lang/tlcore/internal/value"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var metaCommands = []string{":help", ":quit", ":trace", ":env"}

// Shell is a single REPL session: its Environment/Context/Cache persist
// across lines the way the teacher's REPL keeps one evaluator alive for
// the whole session (repl.go's NewWithVersion comment: "resolves
// builtins properly" by sharing one long-lived evaluator).
type Shell struct {
	drv   *driver.Driver
	env   *ast.Environment
	ctx   value.Context
	dom   domain.Domain
	cache *cache.Cache
	trace bool
	names int // not read or updated by any Shell method
}

// New returns a Shell with a fresh environment seeded with the primitive
// operator table (driver.seedOperators, run once here since it is not
// otherwise exported) and an empty context/domain/cache.
func New(drv *driver.Driver) *Shell {
	s := &Shell{
		drv:   drv,
		env:   ast.NewEnvironment(),
		ctx:   value.NewContext(),
		dom:   domain.New(),
		cache: cache.New(),
	}
	s.seedOperators()
	return s
}

// operatorTable mirrors driver.go's; duplicated here because the driver
// does not expose environment seeding as a standalone step and this
// shell needs the operator environment without a fresh Run() per line.
var operatorTable = []string{"#", "@", "==", "/=", "%", "^", "/", "*", "+", "-", "<", "<=", ">", ">="}

func (s *Shell) seedOperators() {
	for _, name := range operatorTable {
		mapped := name
		switch name {
		case "<":
			if s.drv.Quirks.LTMapsToGTE {
				mapped = ">="
			}
		case "/=":
			if s.drv.Quirks.NEMapsToMod {
				mapped = "%"
			}
		}
		s.env.Define(name, ast.NewOp(mapped))
	}
}

// Eval desugars and evaluates a single surface expression against the
// shell's persistent state, extending the context/domain with any new
// WhereDim quantifier dimensions the way driver.Run does for a one-shot
// Run (spec.md §4.5), but without resetting E/K/D between calls.
func (s *Shell) Eval(expr surface.Expr) (eval.Result, error) {
	l0, q, err := desugar.Transform(expr)
	if err != nil {
		return eval.Result{}, err
	}
	for _, d := range q.ToSlice() {
		s.ctx = s.ctx.Push(d, value.U32(0))
		s.dom.Push(d)
	}
	if s.trace {
		fmt.Fprintf(os.Stderr, "K :: %s\n", s.ctx.String())
		fmt.Fprintf(os.Stderr, "D :: %s\n", s.dom.String())
	}
	return eval.Eval(l0, s.env, s.ctx, s.dom, s.dom, s.cache)
}

// Run drives the interactive liner loop, reading JSON L1 fragments one
// line at a time until EOF or :quit.
func Run(drv *driver.Driver, out io.Writer) {
	s := New(drv)

	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".tlcore_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(in string) (c []string) {
		if strings.HasPrefix(in, ":") {
			for _, cmd := range metaCommands {
				if strings.HasPrefix(cmd, in) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	fmt.Fprintf(out, "%s\n", bold("tlcore"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))

	for {
		input, err := line.Prompt("tlcore> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if handleMeta(s, input, out) {
				break
			}
			continue
		}

		expr, err := surface.ParseJSON([]byte(input))
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("parse error"), err)
			continue
		}
		r, err := s.Eval(expr)
		if err != nil {
			printEvalError(out, err)
			continue
		}
		v, missing, isRight := r.Unpack()
		if isRight {
			fmt.Fprintf(out, "%s : missing %s\n", yellow("blocked"), missing.String())
			continue
		}
		fmt.Fprintf(out, "result : %s\n", v.String())
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func printEvalError(out io.Writer, err error) {
	if rep, ok := errors.AsReport(err); ok {
		fmt.Fprintf(out, "%s: %s (%s)\n", red(rep.Code), rep.Message, rep.Phase)
		return
	}
	fmt.Fprintf(out, "%s: %v\n", red("error"), err)
}

func handleMeta(s *Shell, input string, out io.Writer) (quit bool) {
	switch {
	case input == ":quit" || input == ":q":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case input == ":help":
		fmt.Fprintln(out, "  :help   show this message")
		fmt.Fprintln(out, "  :quit   exit the shell")
		fmt.Fprintln(out, "  :trace  toggle printing K/D before each evaluation")
		fmt.Fprintln(out, "  :env    print the persistent context/domain")
	case input == ":trace":
		s.trace = !s.trace
		fmt.Fprintf(out, "trace: %v\n", s.trace)
	case input == ":env":
		fmt.Fprintf(out, "K :: %s\n", s.ctx.String())
		fmt.Fprintf(out, "D :: %s\n", s.dom.String())
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", red("error"), input)
	}
	return false
}
