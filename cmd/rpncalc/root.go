package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpncalc"
	"github.com/zephyrtronium/rpncalc/internal/config"
)

// app holds the state shared by all commands after flags are parsed.
type app struct {
	cfgFile string
	inname  string
	format  string
	strict  bool
	echo    bool
	verbose bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rpncalc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `rpncalc evaluates infix arithmetic with + - * / and parentheses.

Each argument is evaluated as a separate expression. With no arguments,
each non-blank line of standard input (or the --in file) is an expression.
Failed expressions print their error and processing continues.`,
		Example: `  rpncalc '2+3*4' '(2+3)*4'
  echo '8-3-2' | rpncalc --echo`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runEval,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $"+config.EnvVar+", ./rpncalc.toml, ~/.config/rpncalc/config.toml)")
	pf.StringVar(&a.inname, "in", "", "input file (default stdin if no args given)")
	pf.StringVar(&a.format, "fmt", "", "result formatting string (default from config, %g)")
	pf.BoolVar(&a.strict, "strict", false, "reject characters that are not part of an expression")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.Flags().BoolVar(&a.echo, "echo", false, "print postfix form before each result")

	root.AddCommand(newRPNCmd(a), newTUICmd(a))
	return root
}

// setup loads the config and builds the logger. Flags that were set override
// the config.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fmt") {
		a.cfg.Format = a.format
	}
	if cmd.Flags().Changed("strict") {
		a.cfg.Strict = a.strict
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(a.cfg.Log.Level)
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configured", "format", a.cfg.Format, "strict", a.cfg.Strict, "buffer_depth", a.cfg.Buffer.Depth)
	return nil
}

// options returns the evaluation options selected by the config.
func (a *app) options() []rpncalc.Option {
	if a.cfg.Strict {
		return []rpncalc.Option{rpncalc.Strict()}
	}
	return nil
}

// exprs returns the expressions to process: the arguments if there are any,
// otherwise the lines of the input.
func (a *app) exprs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && a.inname == "" {
		return args, nil
	}
	var src []string
	in, closer, err := a.infile(cmd)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			src = append(src, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return append(src, args...), nil
}

func (a *app) infile(cmd *cobra.Command) (io.Reader, io.Closer, error) {
	switch a.inname {
	case "", "-":
		return cmd.InOrStdin(), nil, nil
	default:
		f, err := os.Open(a.inname)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		return f, f, nil
	}
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	srcs, err := a.exprs(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	verb := a.cfg.Format + "\n"
	opts := a.options()
	failed := 0
	for _, src := range srcs {
		r, err := rpncalc.Compile(src, opts...)
		if err == nil && a.echo {
			fmt.Fprintf(out, "%v : ", r)
		}
		var v float64
		if err == nil {
			v, err = r.Eval()
		}
		if err != nil {
			failed++
			a.logFailure(src, err)
			fmt.Fprintln(out, err)
			continue
		}
		a.log.Debug("evaluated", "expr", src, "rpn", r.String(), "result", v)
		fmt.Fprintf(out, verb, v)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

func (a *app) logFailure(src string, err error) {
	var e rpncalc.EvalError
	if errors.As(err, &e) {
		a.log.Debug("evaluation failed", "expr", src, "pos", e.Pos(), "err", err)
		return
	}
	a.log.Warn("evaluation failed", "expr", src, "err", err)
}
