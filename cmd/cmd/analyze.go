/*
Copyright © 2025 Your Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripweaver/internal/core"
	"tripweaver/internal/logger"
	"tripweaver/internal/pipeline"
	"tripweaver/internal/poi"
	"tripweaver/internal/refine"
	"tripweaver/internal/render"
	"tripweaver/internal/scene"
	"tripweaver/internal/spatial"
	"tripweaver/internal/store"
)

var (
	analyzeLevel   string
	analyzeContext string
	analyzeOutput  string
	analyzeNoCache bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [trip-file]",
	Short: "Analyze a trip file and write a markdown report",
	Long: `Analyze reads a trip JSON file (metadata, place clusters, photo labels and
nearby points of interest collected upstream), runs the full enrichment
pipeline and renders a markdown trip report.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeLevel, "level", "", "analysis level: basic, smart, advanced")
	analyzeCmd.Flags().StringVar(&analyzeContext, "context", "", "trip context: travel, daily, outing, mixed")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "disable the adapter result cache")
}

// tripFile is the on-disk input format. Labels and POIs come from upstream
// collaborators; both are optional and absence just means less enrichment.
type tripFile struct {
	Meta     core.TripMetadata                `json:"meta"`
	Clusters []core.PlaceCluster              `json:"clusters"`
	Labels   map[string][]core.Classification `json:"labels,omitempty"` // photo ID -> labels
	POIs     []core.POI                       `json:"pois,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	trip, err := readTripFile(args[0])
	if err != nil {
		return err
	}

	level := core.AnalysisLevel(analyzeLevel)
	if analyzeLevel == "" {
		level = core.AnalysisLevel(cfg.Analysis.Level)
	}
	switch level {
	case core.LevelBasic, core.LevelSmart, core.LevelAdvanced:
	default:
		return fmt.Errorf("unknown analysis level %q", level)
	}

	tripContext := core.TripContext(analyzeContext)
	if analyzeContext == "" {
		tripContext = core.TripContext(cfg.Analysis.TripContext)
	}
	switch tripContext {
	case core.ContextTravel, core.ContextDaily, core.ContextOuting, core.ContextMixed:
	default:
		return fmt.Errorf("unknown trip context %q", tripContext)
	}

	coordinator := buildCoordinator(ctx, trip)

	fmt.Printf("Analyzing %q: %d place(s), %d photo(s)\n",
		trip.Meta.Title, len(trip.Clusters), trip.Meta.PhotoCount)

	result, err := coordinator.Analyze(ctx, pipeline.Input{
		Meta:     trip.Meta,
		Clusters: trip.Clusters,
		Level:    level,
		Context:  tripContext,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := render.Report(result)
	if analyzeOutput == "" {
		fmt.Println(report)
		return nil
	}
	if err := os.WriteFile(analyzeOutput, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report written to %s\n", analyzeOutput)
	return nil
}

func readTripFile(path string) (*tripFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip file: %w", err)
	}
	var trip tripFile
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("failed to parse trip file: %w", err)
	}
	return &trip, nil
}

// buildCoordinator wires the concrete engines. Cache and refiner failures are
// logged and dropped; the pipeline runs without them.
func buildCoordinator(ctx context.Context, trip *tripFile) *pipeline.Coordinator {
	resolver := scene.NewResolver(&fileClassifier{labels: trip.Labels})
	finder := poi.NewFinder(&filePOISearcher{pois: trip.POIs},
		poi.WithRadius(cfg.Analysis.POIRadiusMeters),
		poi.WithLimit(cfg.Analysis.POILimit),
	)

	var cache pipeline.CacheManager
	if cfg.Cache.Enabled && !analyzeNoCache {
		s, err := store.NewStore(cfg.App.DataDir)
		if err != nil {
			logger.Warn("cache unavailable, continuing without it", "reason", err.Error())
		} else {
			cache = s
		}
	}

	var refiner pipeline.StoryRefiner
	if cfg.Refine.Enabled {
		client, err := refine.NewClient(ctx, cfg.Refine.Model)
		if err != nil {
			logger.Warn("story refinement unavailable", "reason", err.Error())
		} else {
			refiner = client
		}
	}

	pipelineConfig := &pipeline.Config{
		CacheEnabled: cache != nil,
		CacheTTL:     cfg.Cache.TTLDuration(),
	}

	return pipeline.NewCoordinator(
		resolver,
		finder,
		pipeline.NewScorerAdapter(),
		pipeline.NewDNAAdapter(),
		pipeline.NewStoryAdapter(nil),
		pipeline.NewInsightAdapter(),
		refiner,
		cache,
		pipelineConfig,
		printProgress,
	)
}

func printProgress(progress float64, message string) {
	fmt.Printf("[%3.0f%%] %s\n", progress*100, message)
}

// fileClassifier serves photo labels recorded in the trip file.
type fileClassifier struct {
	labels map[string][]core.Classification
}

func (f *fileClassifier) Classify(ctx context.Context, photo core.PhotoRef) ([]core.Classification, error) {
	labels, ok := f.labels[photo.ID]
	if !ok {
		return nil, fmt.Errorf("no labels recorded for photo %s", photo.ID)
	}
	return labels, nil
}

// filePOISearcher serves points of interest recorded in the trip file,
// filtered by category and distance the way a live search backend would.
type filePOISearcher struct {
	pois []core.POI
}

func (f *filePOISearcher) Search(ctx context.Context, center core.GeoPoint, category core.POICategory, radiusMeters float64) ([]core.POI, error) {
	var results []core.POI
	for _, p := range f.pois {
		if p.Category != category {
			continue
		}
		if spatial.DistanceMeters(center, p.Location) > radiusMeters {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}
