// Package closetmanager provides image-based clothing analysis for wardrobe cataloging.
//
// This package combines lightweight computer vision heuristics to estimate a
// garment's type, material, and dominant color from an ordinary photo, without
// a trained model or a network connection.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		closetmanager "github.com/b1443/ClosetManager"
//	)
//
//	func main() {
//		cm := closetmanager.New()
//
//		result, err := cm.AnalyzeFile(context.Background(), "shirt.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		fmt.Printf("%s %s (%s), confidence %.2f\n",
//			result.Color, result.Type, result.Material, result.Confidence)
//	}
//
// The package consists of three main components:
//
// 1. Pixels (pkg/pixels): Handles image loading, decoding, and pixel access
// 2. Region (pkg/region): Isolates the garment region from the background
// 3. Classify (pkg/classify): Runs the color, material, and type analyzers concurrently
//
// The analyzers themselves live in pkg/colors, pkg/texture, and pkg/shape.
// Each one is deterministic for a given image and never fails: when a signal
// is too weak to read, the analyzer degrades to a sensible fallback instead
// of returning an error. Only the aggregate confidence gate and the timeout
// can reject an image.
package closetmanager

import (
	"context"
	"io"
	"time"

	"github.com/b1443/ClosetManager/pkg/classify"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

// Version of the closet manager library
const Version = "1.0.0"

// Result is an image classification outcome.
type Result = classify.Result

// ClosetManager provides a high-level interface for clothing image analysis
type ClosetManager struct {
	session *classify.Session
}

// New creates a new ClosetManager with the default heuristic analyzers and
// a 15 second analysis timeout.
func New() *ClosetManager {
	return &ClosetManager{
		session: classify.NewSession(classify.New()),
	}
}

// NewWithClassifier creates a ClosetManager around a custom classifier, for
// callers that swap in their own analysis stages.
func NewWithClassifier(classifier *classify.Classifier, timeout time.Duration) *ClosetManager {
	return &ClosetManager{
		session: classify.NewSessionWithTimeout(classifier, timeout),
	}
}

// AnalyzeFile loads an image from disk and classifies it.
func (cm *ClosetManager) AnalyzeFile(ctx context.Context, path string) (Result, error) {
	buf, err := pixels.Load(path)
	if err != nil {
		return Result{}, err
	}
	return cm.session.Classify(ctx, buf)
}

// AnalyzeReader decodes an image from a reader and classifies it.
func (cm *ClosetManager) AnalyzeReader(ctx context.Context, r io.Reader) (Result, error) {
	buf, err := pixels.LoadReader(r)
	if err != nil {
		return Result{}, err
	}
	return cm.session.Classify(ctx, buf)
}

// Analyze classifies an already loaded pixel buffer.
func (cm *ClosetManager) Analyze(ctx context.Context, buf *pixels.Buffer) (Result, error) {
	return cm.session.Classify(ctx, buf)
}

// Cancel aborts any in-flight analysis.
func (cm *ClosetManager) Cancel() {
	cm.session.Cancel()
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
