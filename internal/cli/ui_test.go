package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/incgraph/pkg/pipeline"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 edges"},
		{1, "1 edge"},
		{7, "7 edges"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "edge"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		name   string
		stats  pipeline.Stats
		cached bool
		want   []string
		absent []string
	}{
		{
			name:   "flat fresh",
			stats:  pipeline.Stats{FileCount: 3, NodeCount: 3, EdgeCount: 1},
			want:   []string{"3 files", "3 nodes", "1 edge", "fresh"},
			absent: []string{"cluster", "cached"},
		},
		{
			name:   "clustered cached",
			stats:  pipeline.Stats{FileCount: 4, NodeCount: 4, EdgeCount: 2, ClusterCount: 2},
			cached: true,
			want:   []string{"2 clusters", "cached"},
			absent: []string{"fresh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := statsLine(tt.stats, tt.cached)
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("statsLine() = %q, missing %q", line, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(line, a) {
					t.Errorf("statsLine() = %q, should not contain %q", line, a)
				}
			}
		})
	}
}
