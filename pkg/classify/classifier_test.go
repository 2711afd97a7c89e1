package classify

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

// stub stages with configurable answers and delays.

type stubColor struct {
	name  string
	delay time.Duration
}

func (s *stubColor) DominantColor(_ context.Context, _ *pixels.Buffer) string {
	time.Sleep(s.delay)
	return s.name
}

type stubMaterial struct {
	material garment.Material
	delay    time.Duration
}

func (s *stubMaterial) ClassifyMaterial(_ context.Context, _ *pixels.Buffer) garment.Material {
	time.Sleep(s.delay)
	return s.material
}

type stubType struct {
	estimate TypeEstimate
	delay    time.Duration
}

func (s *stubType) ClassifyType(_ context.Context, _ *pixels.Buffer) TypeEstimate {
	time.Sleep(s.delay)
	return s.estimate
}

func testBuffer(t *testing.T) *pixels.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{90, 90, 150, 255})
		}
	}
	buf, err := pixels.FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	return buf
}

func stubClassifier(confidence float64, delay time.Duration) *Classifier {
	return NewWithStages(
		&stubColor{name: "Blue", delay: delay},
		&stubMaterial{material: garment.MaterialCotton, delay: delay},
		&stubType{estimate: TypeEstimate{Type: garment.TypeShirt, Confidence: confidence}, delay: delay},
	)
}

func TestExecuteJoinsAllStages(t *testing.T) {
	c := stubClassifier(0.8, 10*time.Millisecond)

	run := c.Execute(context.Background(), testBuffer(t))
	if run.State != StateSucceeded {
		t.Fatalf("state = %s, want succeeded (err: %v)", run.State, run.Err)
	}

	want := Result{Type: garment.TypeShirt, Material: garment.MaterialCotton, Color: "Blue", Confidence: 0.8}
	if run.Result != want {
		t.Errorf("result = %+v, want %+v", run.Result, want)
	}
}

func TestExecuteLowConfidenceGate(t *testing.T) {
	c := stubClassifier(0.05, 0)

	run := c.Execute(context.Background(), testBuffer(t))
	if run.State != StateFailed {
		t.Errorf("state = %s, want failed", run.State)
	}
	if !errors.Is(run.Err, ErrLowConfidence) {
		t.Errorf("err = %v, want ErrLowConfidence", run.Err)
	}
}

func TestExecuteConfidenceGateBoundary(t *testing.T) {
	// Exactly the threshold still fails; just above passes.
	atGate := stubClassifier(MinConfidence, 0).Execute(context.Background(), testBuffer(t))
	if !errors.Is(atGate.Err, ErrLowConfidence) {
		t.Errorf("confidence == gate: err = %v, want ErrLowConfidence", atGate.Err)
	}

	above := stubClassifier(MinConfidence+0.01, 0).Execute(context.Background(), testBuffer(t))
	if above.Err != nil {
		t.Errorf("confidence just above gate: err = %v, want nil", above.Err)
	}
}

func TestExecuteTimeout(t *testing.T) {
	c := stubClassifier(0.8, 200*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	run := c.Execute(ctx, testBuffer(t))
	if run.State != StateTimedOut {
		t.Errorf("state = %s, want timed out", run.State)
	}
	if !errors.Is(run.Err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", run.Err)
	}
	if run.Result != (Result{}) {
		t.Errorf("timed-out run leaked a result: %+v", run.Result)
	}
}

func TestExecuteCanceledContext(t *testing.T) {
	c := stubClassifier(0.8, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := c.Execute(ctx, testBuffer(t))
	if run.State != StateCanceled {
		t.Errorf("state = %s, want canceled", run.State)
	}
	if !errors.Is(run.Err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", run.Err)
	}
}

func TestClassifyDefaultPipeline(t *testing.T) {
	result, err := New().Classify(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if !result.Type.Valid() {
		t.Errorf("type %q invalid", result.Type)
	}
	if !result.Material.Valid() {
		t.Errorf("material %q invalid", result.Material)
	}
	if result.Color == "" {
		t.Error("empty color name")
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		t.Errorf("confidence %f out of range", result.Confidence)
	}
}

func TestClassifyFeaturelessFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	buf, err := pixels.FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	result, err := New().Classify(context.Background(), buf)
	if err != nil {
		t.Fatalf("Classify failed on a uniform gray frame: %v", err)
	}
	if !result.Type.Valid() || !result.Material.Valid() || result.Color == "" {
		t.Errorf("incomplete result for uniform gray frame: %+v", result)
	}
	if result.Confidence <= MinConfidence || result.Confidence > 1 {
		t.Errorf("confidence %f out of range", result.Confidence)
	}
}

func TestStateString(t *testing.T) {
	states := map[State]string{
		StateIdle:      "idle",
		StateAnalyzing: "analyzing",
		StateSucceeded: "succeeded",
		StateFailed:    "failed",
		StateTimedOut:  "timed out",
		StateCanceled:  "canceled",
	}
	for s, want := range states {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
