package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/output"
	"github.com/pfrederiksen/pathfinder/internal/scenario"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	names := make([]string, 0, len(search.Algorithms()))
	for _, alg := range search.Algorithms() {
		names = append(names, alg.String())
	}
	c.JSON(http.StatusOK, gin.H{"algorithms": names})
}

func (s *Server) handleSearch(c *gin.Context) {
	var sc scenario.Scenario
	if err := c.ShouldBindJSON(&sc); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid scenario: %v", err)})
		return
	}

	job, err := s.prepare(&sc)
	if err != nil {
		c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.Timeout)
	defer cancel()

	rec := &observe.Recorder{}
	started := time.Now()
	res, err := job.run(ctx, rec)
	if err != nil {
		s.log.Warn("Search failed", "algorithm", job.alg, "error", err)
		c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	s.log.Info("Search complete",
		"algorithm", job.alg,
		"outcome", res.Outcome,
		"expanded", res.Expanded)

	c.JSON(http.StatusOK, output.ResultJSON{
		Result:          res,
		Events:          rec.Events(),
		ExecutionTimeMs: elapsedMs(started),
	})
}

// job is a validated scenario ready to run
type job struct {
	searcher      *search.Searcher
	alg           search.Algorithm
	start, target grid.Cell
	delay         time.Duration
}

func (j *job) run(ctx context.Context, obs search.Observer) (search.Result, error) {
	return j.searcher.Search(ctx, j.alg, j.start, j.target, obs)
}

func (s *Server) prepare(sc *scenario.Scenario) (*job, error) {
	if sc.Size > s.opts.MaxSize || len(sc.Rows) > s.opts.MaxSize {
		return nil, fmt.Errorf("%w: grid larger than %d", scenario.ErrScenario, s.opts.MaxSize)
	}

	g, start, target, err := sc.Build()
	if err != nil {
		return nil, err
	}
	alg, err := sc.AlgorithmOrDefault(search.BFS)
	if err != nil {
		return nil, err
	}

	searcher := search.New(g, sc.Options())
	if err := searcher.Validate(start, target); err != nil {
		return nil, err
	}

	return &job{
		searcher: searcher,
		alg:      alg,
		start:    start,
		target:   target,
		delay:    min(sc.Delay(), s.opts.MaxDelay),
	}, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scenario.ErrScenario),
		errors.Is(err, search.ErrInvalidInput),
		errors.Is(err, search.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func elapsedMs(since time.Time) float64 {
	return float64(time.Since(since).Microseconds()) / 1000
}
