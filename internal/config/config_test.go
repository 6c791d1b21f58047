package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Analysis.Level != "smart" {
		t.Errorf("Analysis.Level = %q, want smart", cfg.Analysis.Level)
	}
	if cfg.Analysis.TripContext != "travel" {
		t.Errorf("Analysis.TripContext = %q, want travel", cfg.Analysis.TripContext)
	}
	if cfg.Analysis.POIRadiusMeters != 500 {
		t.Errorf("Analysis.POIRadiusMeters = %f, want 500", cfg.Analysis.POIRadiusMeters)
	}
	if cfg.Analysis.POILimit != 5 {
		t.Errorf("Analysis.POILimit = %d, want 5", cfg.Analysis.POILimit)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true")
	}
	if cfg.Refine.Enabled {
		t.Error("Refine.Enabled = true, want false")
	}
	if cfg.Refine.Model != "gemini-1.5-flash" {
		t.Errorf("Refine.Model = %q", cfg.Refine.Model)
	}
}

func TestCacheTTLDuration(t *testing.T) {
	testCases := []struct {
		ttl      string
		expected time.Duration
	}{
		{"168h", 168 * time.Hour},
		{"30m", 30 * time.Minute},
		{"", 7 * 24 * time.Hour},
		{"garbage", 7 * 24 * time.Hour},
		{"-5h", 7 * 24 * time.Hour},
	}
	for _, tc := range testCases {
		c := Cache{TTL: tc.ttl}
		if got := c.TTLDuration(); got != tc.expected {
			t.Errorf("TTLDuration(%q) = %v, want %v", tc.ttl, got, tc.expected)
		}
	}
}
