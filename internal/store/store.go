package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tripweaver/internal/core"
)

// Store is the SQLite-backed cache for adapter results. Classification and
// POI lookups are the only expensive calls in the pipeline, so repeated
// analyses of the same trip reuse their cached outcomes.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store instance backed by a database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "tripweaver.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scene_cache (
		cluster_id TEXT PRIMARY KEY,
		category   TEXT NOT NULL,
		cached_at  TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS hotspot_cache (
		cell      TEXT PRIMARY KEY,
		payload   TEXT NOT NULL,
		cached_at TIMESTAMP NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetSceneCategory returns the cached category for a cluster, if present and
// fresh. ok is false on a miss or an expired entry.
func (s *Store) GetSceneCategory(clusterID string, ttl time.Duration) (core.SceneCategory, bool) {
	var category string
	var cachedAt time.Time
	err := s.db.QueryRow(
		`SELECT category, cached_at FROM scene_cache WHERE cluster_id = ?`, clusterID,
	).Scan(&category, &cachedAt)
	if err != nil || time.Since(cachedAt) > ttl {
		return core.SceneUnknown, false
	}
	return core.SceneCategory(category), true
}

// StoreSceneCategory caches a resolved category for a cluster.
func (s *Store) StoreSceneCategory(clusterID string, category core.SceneCategory) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO scene_cache (cluster_id, category, cached_at) VALUES (?, ?, ?)`,
		clusterID, string(category), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache scene category: %w", err)
	}
	return nil
}

// cellKey quantizes a coordinate to roughly an 11m grid so nearby lookups
// share a cache entry.
func cellKey(center core.GeoPoint) string {
	return fmt.Sprintf("%.4f,%.4f", center.Lat, center.Lon)
}

// GetHotspots returns the cached hotspot grouping for a coordinate cell.
func (s *Store) GetHotspots(center core.GeoPoint, ttl time.Duration) (core.NearbyHotspots, bool) {
	var payload string
	var cachedAt time.Time
	err := s.db.QueryRow(
		`SELECT payload, cached_at FROM hotspot_cache WHERE cell = ?`, cellKey(center),
	).Scan(&payload, &cachedAt)
	if err != nil || time.Since(cachedAt) > ttl {
		return core.NearbyHotspots{}, false
	}
	var hotspots core.NearbyHotspots
	if err := json.Unmarshal([]byte(payload), &hotspots); err != nil {
		return core.NearbyHotspots{}, false
	}
	return hotspots, true
}

// StoreHotspots caches the hotspot grouping for a coordinate cell.
func (s *Store) StoreHotspots(center core.GeoPoint, hotspots core.NearbyHotspots) error {
	payload, err := json.Marshal(hotspots)
	if err != nil {
		return fmt.Errorf("failed to encode hotspots: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO hotspot_cache (cell, payload, cached_at) VALUES (?, ?, ?)`,
		cellKey(center), string(payload), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache hotspots: %w", err)
	}
	return nil
}

// Clear drops every cached entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM scene_cache`); err != nil {
		return fmt.Errorf("failed to clear scene cache: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM hotspot_cache`); err != nil {
		return fmt.Errorf("failed to clear hotspot cache: %w", err)
	}
	return nil
}
