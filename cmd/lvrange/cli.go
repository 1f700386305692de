package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"

	"github.com/katalvlaran/lvrange/stepops"
	"github.com/katalvlaran/lvrange/steprange"
)

const (
	// defaultUnboundedTake caps output of unbounded ranges when --take is unset.
	defaultUnboundedTake = 10
	defaultSep           = " "
)

// CLI is the command-line grammar.
type CLI struct {
	Verbose bool   `short:"v" help:"Log range construction at debug level."`
	Sep     string `env:"LVRANGE_SEP" help:"Separator printed between elements (default: space)."`
	Take    int    `env:"LVRANGE_TAKE" help:"Print at most N elements (0: all, or 10 for unbounded ranges)."`

	Int   IntCmd   `cmd:"" help:"Range over integers."`
	Float FloatCmd `cmd:"" help:"Range over finite floats."`
	Char  CharCmd  `cmd:"" help:"Range over single characters."`
	Time  TimeCmd  `cmd:"" help:"Range over RFC 3339 instants."`
}

// IntCmd ranges over int64 values.
type IntCmd struct {
	Start string `arg:"" help:"First element."`
	End   string `arg:"" optional:"" help:"Last element; omit for an unbounded range."`
	Step  int64  `short:"s" default:"1" help:"Step; its sign is corrected automatically."`
}

// FloatCmd ranges over float64 values.
type FloatCmd struct {
	Start string  `arg:"" help:"First element."`
	End   string  `arg:"" optional:"" help:"Last element; omit for an unbounded range."`
	Step  float64 `short:"s" default:"1" help:"Step; its sign is corrected automatically."`
}

// CharCmd ranges over one-character strings.
type CharCmd struct {
	Start string `arg:"" help:"First character."`
	End   string `arg:"" optional:"" help:"Last character; omit for an unbounded range."`
	Step  int    `short:"s" default:"1" help:"Code point step."`
}

// TimeCmd ranges over instants.
type TimeCmd struct {
	Start string        `arg:"" help:"First instant (RFC 3339)."`
	End   string        `arg:"" optional:"" help:"Last instant (RFC 3339); omit for an unbounded range."`
	Step  time.Duration `short:"s" default:"1h" help:"Duration step."`
}

// env is bound into every command's Run.
type env struct {
	out  io.Writer
	log  *slog.Logger
	sep  string
	take int
}

// run parses args and executes the selected command, writing elements to
// stdout and logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	args = normalizeArgs(args)
	parser, err := kong.New(&cli,
		kong.Name("lvrange"),
		kong.Description("Print stepped ranges between two values."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.Sep == "" {
		cli.Sep = defaultSep
	}
	if cli.Take < 0 {
		return fmt.Errorf("--take must be >= 0, got %d", cli.Take)
	}

	return ctx.Run(&env{
		out:  stdout,
		log:  newLogger(stderr, cli.Verbose),
		sep:  cli.Sep,
		take: cli.Take,
	})
}

// valueFlags maps flags that take a separate value token to their long form.
var valueFlags = map[string]string{
	"-s":     "--step",
	"--step": "--step",
	"--take": "--take",
	"--sep":  "--sep",
}

// normalizeArgs lets negative numbers through kong, which would otherwise
// read "-5" as a short flag. Flag values are joined as --flag=value and the
// command's positionals are moved behind "--":
//
//	int -5 5 -s -2  →  int --step=-2 -- -5 5
//
// Args already containing "--" are returned as is.
func normalizeArgs(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}

	var (
		command     string
		flags       []string
		positionals []string
	)
	for i := 0; i < len(args); i++ {
		a := args[i]
		if long, ok := valueFlags[a]; ok && i+1 < len(args) {
			flags = append(flags, long+"="+args[i+1])
			i++
			continue
		}
		if strings.HasPrefix(a, "-") && a != "-" && !isNumber(a) {
			flags = append(flags, a)
			continue
		}
		if command == "" {
			command = a
			continue
		}
		positionals = append(positionals, a)
	}
	if command == "" {
		return args
	}

	out := append([]string{command}, flags...)
	if len(positionals) > 0 {
		out = append(out, "--")
		out = append(out, positionals...)
	}

	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// newLogger builds a tint text logger; colour only on a terminal.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

// Run prints an integer range.
func (c *IntCmd) Run(e *env) error {
	parse := func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
	return runDomain(e, "int", stepops.Integer[int64](), c.Start, c.End, c.Step, parse,
		func(v int64) string { return strconv.FormatInt(v, 10) })
}

// Run prints a float range.
func (c *FloatCmd) Run(e *env) error {
	parse := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	return runDomain(e, "float", stepops.Float[float64](), c.Start, c.End, c.Step, parse,
		func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
}

// Run prints a character range.
func (c *CharCmd) Run(e *env) error {
	parse := func(s string) (string, error) { return s, nil }
	return runDomain(e, "char", stepops.Char(), c.Start, c.End, c.Step, parse,
		func(v string) string { return v })
}

// Run prints a time range.
func (c *TimeCmd) Run(e *env) error {
	parse := func(s string) (time.Time, error) { return time.Parse(time.RFC3339, s) }
	return runDomain(e, "time", stepops.Time(), c.Start, c.End, c.Step, parse,
		func(v time.Time) string { return v.Format(time.RFC3339) })
}

// runDomain parses the endpoints, builds the range (unbounded when end is
// empty) and prints it.
func runDomain[T, S any](
	e *env,
	domain string,
	ops steprange.Ops[T, S],
	rawStart, rawEnd string,
	step S,
	parse func(string) (T, error),
	format func(T) string,
) error {
	start, err := parse(rawStart)
	if err != nil {
		return fmt.Errorf("%s: start %q: %w", domain, rawStart, err)
	}

	var seq *steprange.Sequence[T]
	if rawEnd == "" {
		seq, err = ops.Infinite()(start, step)
	} else {
		end, perr := parse(rawEnd)
		if perr != nil {
			return fmt.Errorf("%s: end %q: %w", domain, rawEnd, perr)
		}
		seq, err = ops.Range()(start, end, step)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", domain, err)
	}
	e.log.Debug("Range built",
		"domain", domain,
		"start", rawStart,
		"end", rawEnd,
		"step", step,
		"direction", seq.Direction(),
		"bounded", seq.Bounded(),
	)

	var items []T
	switch {
	case e.take > 0:
		items = seq.Take(e.take)
	case !seq.Bounded():
		items = seq.Take(defaultUnboundedTake)
	default:
		if items, err = seq.Collect(); err != nil {
			return err
		}
	}

	line := strings.Join(lo.Map(items, func(v T, _ int) string { return format(v) }), e.sep)
	_, err = fmt.Fprintln(e.out, line)

	return err
}
