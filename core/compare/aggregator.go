package compare

// CategorySummary carries the per-category counts for summary display.
// Pure derived data; nothing here is stateful.
type CategorySummary struct {
	Category    string `json:"category"`
	Matches     int    `json:"matches"`
	Differences int    `json:"differences"`
	SourceOnly  int    `json:"source_only"`
	TargetOnly  int    `json:"target_only"`
	Total       int    `json:"total"`

	// Error is set when the category could not be compared at all
	// (a ConfigurationError); the counts are then all zero.
	Error string `json:"error,omitempty"`
}

// RunResult is the aggregator output: one Result per comparable category,
// per-category configuration errors, and ordered summaries. It is built
// once per run and never mutated afterwards.
type RunResult struct {
	// Results maps category name to its comparison outcome.
	Results map[string]*Result `json:"results"`

	// Errors maps category name to the ConfigurationError that aborted
	// it. An errored category has no entry in Results.
	Errors map[string]error `json:"-"`

	// Summaries holds per-category counts in descriptor-table order.
	Summaries []CategorySummary `json:"summaries"`
}

// HasDrift reports whether any category shows a discrepancy or failed
// its configuration check.
func (r *RunResult) HasDrift() bool {
	if len(r.Errors) > 0 {
		return true
	}
	for _, res := range r.Results {
		if res.HasDrift() {
			return true
		}
	}
	return false
}

// RunAll normalizes and compares every configured category.
//
// A category missing from either side's raw map is treated as an empty
// dataset, not an error; the comparator then classifies the other side's
// records as one-sided. A ConfigurationError aborts only its own category
// and is recorded in Errors, leaving the remaining categories unaffected.
func RunAll(categories []CategoryConfig, source, target map[string]*Raw) *RunResult {
	run := &RunResult{
		Results:   make(map[string]*Result, len(categories)),
		Errors:    make(map[string]error),
		Summaries: make([]CategorySummary, 0, len(categories)),
	}

	for _, cfg := range categories {
		src := Normalize(source[cfg.Name])
		tgt := Normalize(target[cfg.Name])

		result, err := Compare(cfg, src, tgt)
		if err != nil {
			run.Errors[cfg.Name] = err
			run.Summaries = append(run.Summaries, CategorySummary{
				Category: cfg.Name,
				Error:    err.Error(),
			})
			continue
		}

		run.Results[cfg.Name] = result
		run.Summaries = append(run.Summaries, CategorySummary{
			Category:    cfg.Name,
			Matches:     len(result.Matches),
			Differences: len(result.Differences),
			SourceOnly:  len(result.SourceOnly),
			TargetOnly:  len(result.TargetOnly),
			Total:       result.Total(),
		})
	}

	return run
}
