package detection

import (
	"context"
	"errors"

	"shopping-agent/core/reconcile"
	"shopping-agent/core/source"
	"shopping-agent/core/source/registry"

	"go.uber.org/zap"
)

var (
	// ErrNoImage is returned when a request carries no image at all.
	ErrNoImage = errors.New("no image provided")
	// ErrInvalidImage is returned when the supplied image cannot be decoded.
	ErrInvalidImage = errors.New("invalid image")
)

// NoResultsMessage is reported when no vision source produced anything.
const NoResultsMessage = "No results found"

// Archiver stores uploaded images.
type Archiver interface {
	Archive(ctx context.Context, data []byte, contentType, ext string) (string, error)
}

// Options tunes a single detection request. Nil fields use the configured defaults.
type Options struct {
	ConfidenceThreshold *float64 `json:"confidence_threshold,omitempty"`
	MaxResults          *int     `json:"max_results,omitempty"`
	// Archive set to false skips archiving this upload.
	Archive *bool `json:"archive,omitempty"`
}

// Report is the detection response.
type Report struct {
	Products []source.Detection      `json:"products"`
	Sources  []reconcile.SourceStatus `json:"sources"`
	Archived string                   `json:"archived,omitempty"`
	Message  string                   `json:"message,omitempty"`
}

// Service runs every configured vision source and reconciles their detections.
type Service struct {
	registry *registry.Registry
	archiver Archiver
	logger   *zap.Logger
}

// NewService creates a new detection service. archiver may be nil.
func NewService(reg *registry.Registry, archiver Archiver, logger *zap.Logger) *Service {
	return &Service{registry: reg, archiver: archiver, logger: logger}
}

// Detect finds products in img.
//
// Vision sources run in parallel with the configured per-source timeout.
// Detections below the confidence threshold are dropped after
// deduplication, the rest are ranked by confidence.
func (s *Service) Detect(ctx context.Context, img source.Image, opts Options) (*Report, error) {
	if len(img.Data) == 0 {
		return nil, ErrNoImage
	}

	settings := s.registry.Settings()
	threshold := settings.ConfidenceThreshold
	if opts.ConfidenceThreshold != nil {
		threshold = *opts.ConfidenceThreshold
	}
	maxResults := settings.MaxResults
	if opts.MaxResults != nil {
		maxResults = *opts.MaxResults
	}

	detectors := s.registry.Detectors()
	tasks := make([]reconcile.Task[source.Detection], 0, len(detectors))
	for _, d := range detectors {
		tasks = append(tasks, reconcile.Task[source.Detection]{
			Source: d.Name(),
			Fetch: func(ctx context.Context) ([]source.Detection, error) {
				return d.Detect(ctx, img)
			},
		})
	}

	outcomes := reconcile.Gather(ctx, settings.Timeout, tasks)
	result := reconcile.Reconcile(reconcile.Spec{
		Score:      reconcile.ScoreConfidence,
		MaxResults: maxResults,
		MinScore:   &threshold,
		Logger:     s.logger,
	}, outcomes)

	report := &Report{
		Products: result.Items,
		Sources:  result.Sources,
	}
	if report.Products == nil {
		report.Products = []source.Detection{}
	}
	if result.AllFailed || len(result.Items) == 0 {
		report.Message = NoResultsMessage
	}

	for _, o := range outcomes {
		if !o.Failed() {
			s.logger.Info("Vision source finished",
				zap.String("source", o.Source),
				zap.Int("detections", len(o.Items)),
				zap.Duration("elapsed", o.Elapsed))
		}
	}

	if s.archiver != nil && (opts.Archive == nil || *opts.Archive) {
		object, err := s.archiver.Archive(ctx, img.Data, img.MimeType, img.Extension())
		if err != nil {
			// The upload archive is best effort
			s.logger.Warn("Failed to archive upload", zap.Error(err))
		} else {
			report.Archived = object
		}
	}

	return report, nil
}
