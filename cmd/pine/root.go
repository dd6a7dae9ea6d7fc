package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pinefile/pine"
	"github.com/pinefile/pine/internal/pinefile"
)

type rootFlags struct {
	file     string
	runner   string
	logLevel string
	noColor  bool
	config   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pine [flags] <task> [-key=value ...]",
		Short:         "pine runs tasks from a pinefile",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(cmd, flags, args)
		},
	}

	// Everything after the task name belongs to the task, not to pine.
	cmd.Flags().SetInterspersed(false)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.file, "file", "f", "", "pinefile path (default: pinefile.lua, pinefile.yml or pinefile.yaml)")
	pf.StringVar(&flags.runner, "runner", "", "run tasks through a registered runner")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&flags.config, "config", "", "config file (default: ./pine.yml)")

	cmd.AddCommand(newListCmd(flags))
	return cmd
}

func runTask(cmd *cobra.Command, flags *rootFlags, argv []string) error {
	if len(argv) == 0 {
		return errors.New("no task specified (try 'pine list')")
	}

	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}
	loadDotenv()

	taskArgs, err := parseTaskArgs(argv[1:])
	if err != nil {
		return err
	}

	ns, err := loadNamespace(settings.GetString("file"))
	if err != nil {
		return err
	}

	tracker := &exitTracker{
		Logger: newLogger(settings.GetString("log_level"), settings.GetBool("no_color")),
	}
	cfg := pine.Config{
		Logger:  tracker,
		Options: pine.Options(settings.GetStringMap("options")),
	}
	if name := settings.GetString("runner"); name != "" {
		p, err := pine.LookupRunner(name)
		if err != nil {
			return fmt.Errorf("%w (registered: %s)", err, strings.Join(pine.RunnerNames(), ", "))
		}
		cfg.Runner = p
	}

	pine.New(cfg).Run(cmd.Context(), ns, argv[0], taskArgs)

	if tracker.failed() {
		return errTasksFailed
	}
	return nil
}

// loadSettings merges, in increasing precedence: defaults, the pine config
// file, PINE_-prefixed environment variables, and command-line flags.
func loadSettings(flags *rootFlags) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("file", "")
	v.SetDefault("runner", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)
	v.SetDefault("options", map[string]any{})

	v.SetEnvPrefix("PINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags.config != "" {
		v.SetConfigFile(flags.config)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("pine")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags.file != "" {
		v.Set("file", flags.file)
	}
	if flags.runner != "" {
		v.Set("runner", flags.runner)
	}
	if flags.logLevel != "" {
		v.Set("log_level", flags.logLevel)
	}
	if flags.noColor {
		v.Set("no_color", true)
	}
	return v, nil
}

// loadDotenv exports the entries of a ./.env file, if present, into the
// process environment so shell tasks see them.
func loadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return
	}
	for _, key := range v.AllKeys() {
		if os.Getenv(strings.ToUpper(key)) == "" {
			os.Setenv(strings.ToUpper(key), v.GetString(key))
		}
	}
}

// loadNamespace loads the given pinefile, or probes the default names.
func loadNamespace(file string) (pine.Namespace, error) {
	if file != "" {
		return pinefile.Load(file)
	}
	for _, name := range pinefile.DefaultNames {
		if _, err := os.Stat(name); err == nil {
			return pinefile.Load(name)
		}
	}
	return nil, fmt.Errorf("no pinefile found (tried %s)", strings.Join(pinefile.DefaultNames, ", "))
}

func newLogger(level string, noColor bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           lvl,
	})
	if noColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

// exitTracker wraps the engine logger and remembers whether any error was
// logged, turning logged task failures into a non-zero exit.
type exitTracker struct {
	pine.Logger

	mu     sync.Mutex
	errors bool
}

func (t *exitTracker) Error(msg any, keyvals ...any) {
	t.mu.Lock()
	t.errors = true
	t.mu.Unlock()
	t.Logger.Error(msg, keyvals...)
}

func (t *exitTracker) failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errors
}
