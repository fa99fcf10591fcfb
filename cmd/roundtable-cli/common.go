package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	roundtable "github.com/katalvlaran/roundtable"
	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/internal/config"
)

// runSchedule loads the --config file (defaults silently if absent),
// applies its solver.default_time_limit_seconds when req omits one, calls
// the core pipeline, and prints compact JSON to stdout, mirroring
// original_source/python/main.py's
// print(json.dumps(result, separators=(",", ":"))). On a pipeline error
// (invalid input/problem, §7) it prints {"error": ...} to stdout instead
// and exits 1 — the same shape the reference CLI uses for its failure
// path, so downstream tooling parses one JSON document either way.
func runSchedule(req core.Request) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		emitJSON(map[string]string{"error": err.Error()})
		os.Exit(1)
	}
	if req.TimeLimitSeconds == 0 {
		req.TimeLimitSeconds = cfg.Solver.DefaultTimeLimitSeconds
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxCLITimeout(req))
	defer cancel()

	resp, err := roundtable.Schedule(ctx, req)
	if err != nil {
		emitJSON(map[string]string{"error": err.Error()})
		os.Exit(1)
	}
	emitJSON(resp)
}

// maxCLITimeout gives the pipeline a little headroom over its own solver
// time limit so context cancellation never races a legitimate solve.
func maxCLITimeout(req core.Request) time.Duration {
	seconds := req.TimeLimitSeconds
	if seconds <= 0 {
		seconds = core.DefaultTimeLimitSeconds
	}
	return time.Duration(seconds+5) * time.Second
}

func emitJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, "roundtable-cli: failed to encode response:", err)
		os.Exit(1)
	}
}
