package scene

import (
	"context"

	"tripweaver/internal/core"
	"tripweaver/internal/logger"
)

const (
	// minConfidence is the floor below which classifier labels are ignored.
	minConfidence = 0.1
	// maxLabelsPerPhoto caps how many ranked labels one photo contributes.
	maxLabelsPerPhoto = 5
	// maxSampledPhotos bounds classification cost per cluster.
	maxSampledPhotos = 3
)

// ImageClassifier is the black-box vision capability. Given a photo reference
// it returns ranked labels with confidence in [0,1].
type ImageClassifier interface {
	Classify(ctx context.Context, photo core.PhotoRef) ([]core.Classification, error)
}

// Resolver wraps the image classifier and reduces per-photo label lists into
// one dominant scene category per cluster.
type Resolver struct {
	classifier ImageClassifier
}

// NewResolver creates a scene resolver over the given classifier.
func NewResolver(classifier ImageClassifier) *Resolver {
	return &Resolver{classifier: classifier}
}

// DominantCategory classifies a deterministic subsample of the cluster's
// photos and returns the confidence-weighted winning category. Individual
// photo failures are logged and treated as "no vote"; when nothing yields a
// classification the result is SceneUnknown, never an error.
func (r *Resolver) DominantCategory(ctx context.Context, cluster core.PlaceCluster) core.SceneCategory {
	if r.classifier == nil || len(cluster.Photos) == 0 {
		return core.SceneUnknown
	}

	votes := make(map[core.SceneCategory]float64)
	for _, photo := range samplePhotos(cluster.Photos) {
		results, err := r.classifier.Classify(ctx, photo)
		if err != nil {
			logger.Warn("photo classification failed, skipping", "cluster", cluster.ID, "photo", photo.ID, "reason", err.Error())
			continue
		}
		if len(results) > maxLabelsPerPhoto {
			results = results[:maxLabelsPerPhoto]
		}
		for _, c := range results {
			if c.Confidence < minConfidence {
				continue
			}
			category := CategoryForLabel(c.Label)
			if category == core.SceneUnknown {
				continue
			}
			votes[category] += c.Confidence
		}
	}

	return winningCategory(votes)
}

// samplePhotos picks first/middle/last when the cluster is large, bounding
// classifier cost while keeping temporal spread.
func samplePhotos(photos []core.PhotoRef) []core.PhotoRef {
	if len(photos) <= maxSampledPhotos {
		return photos
	}
	return []core.PhotoRef{
		photos[0],
		photos[len(photos)/2],
		photos[len(photos)-1],
	}
}

// winningCategory returns the category with the highest accumulated vote.
// Ties resolve to the earlier category in declaration order so the result is
// stable across runs.
func winningCategory(votes map[core.SceneCategory]float64) core.SceneCategory {
	best := core.SceneUnknown
	bestVote := 0.0
	for _, category := range core.AllSceneCategories {
		if vote, ok := votes[category]; ok && vote > bestVote {
			best = category
			bestVote = vote
		}
	}
	return best
}
