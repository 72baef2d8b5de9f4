// Package diagnosis defines the crop image analysis provider. The
// interface is the contract; the bundled implementation is a stand-in
// generator that a real inference backend replaces without touching
// call sites.
package diagnosis

import (
	"context"

	"agrimarket-backend/internal/domain"
)

type Analyzer interface {
	// Analyze takes an opaque image reference and returns a structured
	// diagnosis. It never inspects the image contents itself.
	Analyze(ctx context.Context, imageURI string) (*domain.DiagnosisResult, error)
}
