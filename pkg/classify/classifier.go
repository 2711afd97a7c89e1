// Package classify aggregates the color, material, and type analyzer stages
// into a single garment classification. The three stages run concurrently
// over a shared read-only pixel buffer and are joined before any result is
// assembled; cancellation stops the run without emitting a result.
package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

// Classification failure modes surfaced to callers. Stage-internal faults
// are never among them.
var (
	// ErrLowConfidence means the pipeline completed but the type estimate is
	// below the acceptance threshold. Recoverable via retry or manual entry.
	ErrLowConfidence = errors.New("could not analyze this image, please retry or enter details manually")
	// ErrTimeout means the wall-clock budget elapsed before all stages joined.
	ErrTimeout = errors.New("analysis timed out")
)

// MinConfidence is the acceptance threshold: results at or below it are
// reported as failed.
const MinConfidence = 0.1

// DefaultTimeout is the conventional wall-clock budget for one run.
const DefaultTimeout = 15 * time.Second

// Result is one garment classification. It is transient: callers consume it
// once to seed a catalog record.
type Result struct {
	Type       garment.Type     `json:"type"`
	Material   garment.Material `json:"material"`
	Color      string           `json:"color"`
	Confidence float64          `json:"confidence"`
}

// State tracks one classification run.
type State int

// Run states.
const (
	StateIdle State = iota
	StateAnalyzing
	StateSucceeded
	StateFailed
	StateTimedOut
	StateCanceled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed out"
	case StateCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Run is the state-machine value describing one classification attempt.
type Run struct {
	State  State
	Result Result
	Err    error
}

// Classifier fans a pixel buffer out to the three analyzer stages and joins
// their answers.
type Classifier struct {
	color    ColorAnalyzer
	material MaterialClassifier
	gtype    TypeClassifier
}

// New creates a Classifier over the default heuristic stages.
func New() *Classifier {
	return NewWithStages(NewHeuristicColor(), NewHeuristicMaterial(), NewHeuristicType())
}

// NewWithStages creates a Classifier over caller-supplied stages.
func NewWithStages(color ColorAnalyzer, material MaterialClassifier, gtype TypeClassifier) *Classifier {
	return &Classifier{color: color, material: material, gtype: gtype}
}

// Classify runs the three stages concurrently and returns the joined result.
// The result is only usable when err is nil; ErrLowConfidence and ErrTimeout
// are both retryable. Cancellation via ctx guarantees no result is emitted
// after the context ends.
func (c *Classifier) Classify(ctx context.Context, buf *pixels.Buffer) (Result, error) {
	run := c.Execute(ctx, buf)
	return run.Result, run.Err
}

// Execute is Classify with the full state-machine value exposed.
func (c *Classifier) Execute(ctx context.Context, buf *pixels.Buffer) Run {
	if err := ctx.Err(); err != nil {
		return abortedRun(err)
	}

	start := time.Now()
	slog.Debug("starting classification", "width", buf.Width(), "height", buf.Height())

	var (
		colorName string
		material  garment.Material
		estimate  TypeEstimate
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		colorName = c.color.DominantColor(ctx, buf)
	}()
	go func() {
		defer wg.Done()
		material = c.material.ClassifyMaterial(ctx, buf)
	}()
	go func() {
		defer wg.Done()
		estimate = c.gtype.ClassifyType(ctx, buf)
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		// The stage goroutines drain on their own; their values are dropped,
		// so no result escapes a canceled run.
		slog.Debug("classification aborted", "elapsed", time.Since(start))
		return abortedRun(ctx.Err())
	case <-done:
	}

	result := Result{
		Type:       estimate.Type,
		Material:   material,
		Color:      colorName,
		Confidence: estimate.Confidence,
	}

	slog.Debug("classification complete",
		"type", result.Type,
		"material", result.Material,
		"color", result.Color,
		"confidence", result.Confidence,
		"elapsed", time.Since(start))

	if result.Confidence <= MinConfidence {
		return Run{State: StateFailed, Result: result, Err: ErrLowConfidence}
	}
	return Run{State: StateSucceeded, Result: result}
}

// abortedRun distinguishes a run stopped by its deadline from one the caller
// canceled outright.
func abortedRun(err error) Run {
	if errors.Is(err, context.DeadlineExceeded) {
		return Run{State: StateTimedOut, Err: ErrTimeout}
	}
	return Run{State: StateCanceled, Err: err}
}
