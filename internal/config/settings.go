package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings captures daemon invocation parameters for the application.
type Settings struct {
	ConfigPath     string
	SocketPath     string
	NiriBin        string
	EventStream    bool
	CommandTimeout time.Duration
	Logging        Logging
	Flags          map[string]string
	Args           []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath     = "NIRI_PANEL_CONFIG"
	envSocketPath     = "NIRI_PANEL_SOCKET"
	envNiriBin        = "NIRI_PANEL_NIRI_BIN"
	envCommandTimeout = "NIRI_PANEL_COMMAND_TIMEOUT"
	envTrace          = "NIRI_PANEL_TRACE"
	envLogFile        = "NIRI_PANEL_LOG_FILE"
)

const defaultCommandTimeout = 5 * time.Second

// Load parses settings from CLI arguments and environment variables.
func Load() (Settings, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Settings, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("niri-panel", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigPath, ""), "path to the panel config file (empty uses the XDG config directory)")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the control socket (empty uses the runtime directory)")
	niriBin := fs.String("niri-bin", envOrDefault(env, envNiriBin, "niri"), "niri binary used for queries, actions and the event stream")
	eventStream := fs.Bool("event-stream", true, "follow the compositor event stream")
	timeout := fs.Duration("command-timeout", envOrDuration(env, envCommandTimeout, defaultCommandTimeout), "deadline for one-shot niri msg invocations")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	if *timeout <= 0 {
		return Settings{}, fmt.Errorf("command timeout must be positive (got %v)", *timeout)
	}
	if strings.TrimSpace(*niriBin) == "" {
		return Settings{}, fmt.Errorf("niri binary must not be empty")
	}

	settings := Settings{
		ConfigPath:     *configPath,
		SocketPath:     *socket,
		NiriBin:        *niriBin,
		EventStream:    *eventStream,
		CommandTimeout: *timeout,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":         *configPath,
			"socket":         *socket,
			"niriBin":        *niriBin,
			"eventStream":    strconv.FormatBool(*eventStream),
			"commandTimeout": timeout.String(),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return settings, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns settings or exits.
func MustLoad() Settings {
	settings, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return settings
}
