// Package roundtable is the single external operation (spec §6): schedule
// a set of participants across tables and rounds, honoring SameOnce and
// NeverTogether pairings as best as a time-bounded search can.
//
// Schedule is the orchestrator of the pipeline's state machine (§4.7):
// validate the request, normalize its pairs, plan reporting table sizes,
// build a model against a cpsat.Backend, solve it, and extract an
// audited response. It takes no global state and no logger (§9: "the core
// has none") — callers in internal/api and cmd/roundtable-cli own logging,
// metrics, and configuration around this call.
package roundtable

import (
	"context"
	"time"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/cpsat"
	"github.com/katalvlaran/roundtable/cpsat/localsearch"
	"github.com/katalvlaran/roundtable/extractor"
	"github.com/katalvlaran/roundtable/normalize"
)

// Schedule runs the full pipeline for req and returns the resulting
// core.Response.
//
// Errors returned here are always core.ErrInvalidInput or
// core.ErrInvalidProblem (§7); anything a solved model can report — up to
// and including core.StatusInfeasible — comes back as a normal Response,
// never an error.
func Schedule(ctx context.Context, req core.Request) (core.Response, error) {
	timeLimitSeconds, err := core.ValidateRequest(req)
	if err != nil {
		return core.Response{}, err
	}

	samePairs := normalize.Pairs(req.SameOncePairs, req.Participants)
	neverPairs := normalize.Pairs(req.NeverTogetherPairs, req.Participants)

	backend := localsearch.New()
	model, err := cpsat.BuildModel(backend, req.Participants, req.Tables, req.Rounds, samePairs, neverPairs)
	if err != nil {
		return core.Response{}, err
	}

	timeLimit := time.Duration(timeLimitSeconds) * time.Second
	status := backend.Solve(ctx, timeLimit, core.NumSearchWorkers)

	resp := extractor.Extract(backend, model, status, backend.ObjectiveValue())
	return resp, nil
}
