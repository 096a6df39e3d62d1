package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/niri-panel/internal/app"
	"github.com/atomicstack/niri-panel/internal/config"
	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
)

func main() {
	settings := config.MustLoad()
	logging.Configure(settings.Logging.FilePath)
	logging.SetTraceEnabled(settings.Logging.Trace)

	traceStartup(settings)

	if err := app.Run(settings); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(settings config.Settings) {
	events.App.Start(startupTracePayload(settings))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(settings config.Settings) map[string]interface{} {
	flags := make(map[string]interface{}, len(settings.Flags))
	for k, v := range settings.Flags {
		flags[k] = v
	}
	flags["trace"] = settings.Logging.Trace
	flags["logFile"] = settings.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   settings.Args,
		"flags":  flags,
		"config": settings,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions. The daemon usually runs detached from any terminal; the trace
// records which case this start was.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
