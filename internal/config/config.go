package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/todo-popup/internal/app"
	"github.com/atomicstack/todo-popup/internal/todo"
	"github.com/spf13/pflag"
)

// Config is everything main needs to start the program.
type Config struct {
	App     app.Config
	Logging Logging
	// Flags holds the final value of every flag, keyed by flag name.
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// seedSeparator splits TODO_POPUP_SEED into titles.
const seedSeparator = ";"

// envBindings maps flags to the environment variables consulted when the
// flag is absent from the command line.
var envBindings = []struct {
	flag, env string
}{
	{"width", "TODO_POPUP_WIDTH"},
	{"height", "TODO_POPUP_HEIGHT"},
	{"footer", "TODO_POPUP_FOOTER"},
	{"filter", "TODO_POPUP_FILTER"},
	{"seed", "TODO_POPUP_SEED"},
	{"trace", "TODO_POPUP_TRACE"},
	{"log-file", "TODO_POPUP_LOG_FILE"},
}

// Load reads the process arguments and environment.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs is Load with explicit inputs. Command-line flags win over the
// environment; unparsable environment values are ignored.
func LoadArgs(args []string, environ []string) (Config, error) {
	var cfg Config
	fs := pflag.NewFlagSet("todo-popup", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.IntVar(&cfg.App.Width, "width", 0, "viewport width in cells (0 follows the terminal)")
	fs.IntVar(&cfg.App.Height, "height", 0, "viewport height in rows (0 follows the terminal)")
	fs.BoolVar(&cfg.App.ShowFooter, "footer", false, "show the key hint row")
	fs.StringVarP(&cfg.App.Filter, "filter", "f", "", "initial filter: all, active or completed")
	fs.StringArrayVar(&cfg.App.Seed, "seed", nil, "add a task at startup (repeatable)")
	fs.BoolVar(&cfg.Logging.Trace, "trace", false, "write JSON trace events to the log file")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", "", "log file path")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	fromEnv := applyEnv(fs, parseEnv(environ))
	source := func(flag string) string {
		if env, ok := fromEnv[flag]; ok {
			return env
		}
		return "--" + flag
	}

	if cfg.App.Width < 0 {
		return Config{}, fmt.Errorf("%s must not be negative (got %d)", source("width"), cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return Config{}, fmt.Errorf("%s must not be negative (got %d)", source("height"), cfg.App.Height)
	}

	cfg.Flags = make(map[string]string)
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	cfg.Flags["seed"] = strings.Join(cfg.App.Seed, seedSeparator)
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// applyEnv sets flags from the environment and returns the variable used for
// each flag it set.
func applyEnv(fs *pflag.FlagSet, env map[string]string) map[string]string {
	applied := make(map[string]string)
	for _, b := range envBindings {
		value := strings.TrimSpace(env[b.env])
		if value == "" || fs.Changed(b.flag) {
			continue
		}
		if b.flag == "seed" {
			for _, title := range strings.Split(value, seedSeparator) {
				if title = strings.TrimSpace(title); title != "" {
					_ = fs.Set(b.flag, title)
					applied[b.flag] = b.env
				}
			}
			continue
		}
		if err := fs.Set(b.flag, value); err != nil {
			// pflag stores the zero value on a failed parse.
			_ = fs.Set(b.flag, fs.Lookup(b.flag).DefValue)
			continue
		}
		applied[b.flag] = b.env
	}
	return applied
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			values[key] = value
		}
	}
	return values
}

// MustLoad returns configuration or exits with status 2.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option values the application cannot act on.
func Validate(cfg Config) error {
	if _, ok := todo.ParseFilter(cfg.App.Filter); !ok {
		return fmt.Errorf("unknown filter %q (want all, active or completed)", cfg.App.Filter)
	}
	return nil
}
