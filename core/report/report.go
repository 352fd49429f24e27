package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"drift-detector/core/compare"

	"github.com/google/uuid"
)

// Endpoint identifies one compared database in the report header.
type Endpoint struct {
	Label   string `json:"label"`
	Address string `json:"address"`
	Version string `json:"version,omitempty"`
}

// Report is the renderer-facing view of one comparison run. It is built
// once from the aggregator output and never mutated afterwards.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Source Endpoint `json:"source"`
	Target Endpoint `json:"target"`

	// Summaries holds per-category counts in descriptor-table order.
	Summaries []compare.CategorySummary `json:"summaries"`

	// Results maps category name to its full comparison outcome.
	// Categories that failed their configuration check are absent here
	// and carry an error in their summary entry instead.
	Results map[string]*compare.Result `json:"results"`

	// Drift is true when any category shows a discrepancy or error.
	Drift bool `json:"drift"`
}

// New assembles a report from one aggregator run.
func New(source, target Endpoint, run *compare.RunResult) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Target:      target,
		Summaries:   run.Summaries,
		Results:     run.Results,
		Drift:       run.HasDrift(),
	}
}

// Totals sums the per-category counts for the report header.
func (r *Report) Totals() compare.CategorySummary {
	total := compare.CategorySummary{Category: "Total"}
	for _, s := range r.Summaries {
		total.Matches += s.Matches
		total.Differences += s.Differences
		total.SourceOnly += s.SourceOnly
		total.TargetOnly += s.TargetOnly
		total.Total += s.Total
	}
	return total
}

// WriteJSON writes the report as indented JSON, creating the directory
// if needed.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// LoadJSON reads a report previously written by WriteJSON.
func LoadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}
