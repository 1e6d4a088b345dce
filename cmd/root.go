package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smazurov/nucled/internal/config"
	"github.com/smazurov/nucled/internal/led"
	"github.com/smazurov/nucled/internal/logging"
	"github.com/smazurov/nucled/internal/version"
	"github.com/spf13/cobra"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string

	// LED backend settings
	Backend  string `toml:"led.backend" env:"BACKEND"`
	AcpiPath string `toml:"led.acpi_path" env:"ACPI_PATH"`

	// Logging settings
	LoggingLevel   string `toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingJournal bool   `toml:"logging.journal" env:"LOGGING_JOURNAL"`
}

// ControllerFactory builds the LED controller for one invocation.
type ControllerFactory func(opts led.Options, logger logging.Logger) (led.Controller, error)

// Argument-count errors.
var (
	ErrNoArguments           = errors.New("no arguments supplied")
	ErrInsufficientArguments = errors.New("insufficient arguments supplied")
)

const helpArg = "help"

// CreateRootCmd creates the nucled command. newController is called only
// after all four positional arguments have been validated.
func CreateRootCmd(newController ControllerFactory) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "nucled <led> <color> <mode> <brightness>",
		Short: "Set Intel NUC indicator LED color, mode and brightness",
		Long: `Sets the color, blink/fade mode and brightness of the power button or ring LED ` +
			`of an Intel NUC through the firmware SetState management method.`,
		Args:              cobra.ArbitraryArgs,
		Version:           version.Get().String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, newController)
		},
	}

	flags := cmd.Flags()
	// "nucled ring red On -5" must reach the brightness parser
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.Config, "config", "c", "", "Path to TOML configuration file")
	flags.StringVar(&opts.Backend, "backend", led.BackendAuto,
		"LED backend ("+strings.Join(led.Backends(), ", ")+")")
	flags.StringVar(&opts.AcpiPath, "acpi-path", led.DefaultACPIPath, "nuc_led control file used by the acpi backend")
	flags.StringVar(&opts.LoggingLevel, "logging-level", "warn", "Logging level (debug, info, warn, error)")
	flags.StringVar(&opts.LoggingFormat, "logging-format", "text", "Logging format (text, json)")
	flags.BoolVar(&opts.LoggingJournal, "logging-journal", false, "Also log to the systemd journal when available")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		printUsage(out, c.Name())
		fmt.Fprintf(out, "\nFlags:\n%s", c.Flags().FlagUsages())
	})
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return cmd
}

// Execute runs the CLI against the process arguments and returns the exit code.
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr, led.New)
}

// ExecuteArgs runs the CLI with explicit arguments and writers.
func ExecuteArgs(args []string, stdout, stderr io.Writer, newController ControllerFactory) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	root := CreateRootCmd(newController)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		report(stderr, root.Name(), err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string, opts *Options, newController ControllerFactory) error {
	if err := config.LoadConfig(opts, cmd); err != nil {
		return err
	}
	initLogging(cmd, opts)
	logger := logging.GetLogger("cli")

	if len(args) == 0 {
		return &usageError{err: ErrNoArguments}
	}

	if args[0] == helpArg {
		explain(cmd.OutOrStdout(), cmd.Name(), args[1:])
		return nil
	}

	if len(args) < 4 {
		return &usageError{err: ErrInsufficientArguments}
	}
	if len(args) > 4 {
		logger.Warn("Ignoring extra arguments", "args", args[4:])
	}

	state, err := led.ParseState(args[0], args[1], args[2], args[3])
	if err != nil {
		return &usageError{err: err}
	}

	ctrl, err := newController(led.Options{
		Backend:  opts.Backend,
		ACPIPath: opts.AcpiPath,
		Out:      cmd.OutOrStdout(),
	}, logging.GetLogger("led"))
	if errors.Is(err, led.ErrUnavailable) {
		return &dispatchError{err: err}
	}
	if err != nil {
		return err
	}

	logger.Info("Setting LED state",
		"state", state.String(),
		"backend", ctrl.Name(),
		"word", fmt.Sprintf("0x%08x", state.Word()))

	if err := ctrl.Set(state); err != nil {
		return &dispatchError{err: err}
	}

	logger.Debug("LED state set", "backend", ctrl.Name())
	return nil
}

// initLogging merges per-module levels from the config file with the
// resolved global options.
func initLogging(cmd *cobra.Command, opts *Options) {
	cfg := config.LoadLoggingConfig(opts.Config)
	cfg.Level = opts.LoggingLevel
	cfg.Format = opts.LoggingFormat
	cfg.Journal = opts.LoggingJournal
	cfg.Output = cmd.ErrOrStderr()
	logging.Initialize(cfg)
}
