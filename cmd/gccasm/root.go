package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/gccasm/config"
	"github.com/sarchlab/gccasm/translate"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitConfig  = 3
)

// exitError carries the exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// errReported is returned once the diagnostics have been written.
var errReported = errors.New("errors reported")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	if !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "gccasm: %v\n", err)
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "gccasm",
		Short:             "gccasm - translate GCC extended assembly to the asm! macro form",
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(a.translateCommand(), a.batchCommand(), a.tokensCommand())

	return root
}

// setup loads the configuration, applies the global flags on top of it and
// creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		cfg, err = config.Load(a.configPath)
		if err != nil {
			return &exitError{code: exitConfig, err: err}
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	w := a.stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return &exitError{
				code: exitConfig,
				err:  errors.Wrapf(err, "opening log file %s", cfg.Log.File),
			}
		}
		atexit.Register(func() { f.Close() })
		w = f
	}

	logger, err := cfg.Logger(w)
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"rewriter", cfg.Translate.Rewriter,
		"format", cfg.Output.Format)

	return nil
}

func (a *app) translator() (*translate.Translator, error) {
	b, err := a.cfg.TranslatorBuilder(a.logger)
	if err != nil {
		return nil, &exitError{code: exitConfig, err: err}
	}
	return b.Build(), nil
}

// readInput returns the source named by the arguments: the -e expression,
// the file, or standard input when neither is given or FILE is "-".
func (a *app) readInput(args []string, expr string, exprSet bool) (name, src string, err error) {
	switch {
	case exprSet && len(args) > 0:
		return "", "", errors.New("give either FILE or -e, not both")
	case exprSet:
		return "<expr>", expr, nil
	case len(args) == 1 && args[0] != "-":
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", errors.Wrapf(err, "reading %s", args[0])
		}
		return args[0], string(data), nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", "", errors.Wrap(err, "reading standard input")
	}
	return "<stdin>", string(data), nil
}
