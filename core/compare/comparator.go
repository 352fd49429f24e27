package compare

import (
	"strings"

	"drift-detector/core/utils"
)

// IdentityDelimiter joins key-column values into a single map key.
// The ASCII unit separator never appears in sane identifier text; a key
// value that does contain it can collide with a neighboring identity.
// That risk is accepted and documented rather than defended against.
const IdentityDelimiter = "\x1f"

// ValuePair holds the canonical source and target values of one changed column.
type ValuePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// DiffEntry describes a record pair that shares an identity but differs
// in at least one non-ignored column.
type DiffEntry struct {
	// Identity is the key-column value tuple, in key-column order.
	Identity []string `json:"identity"`

	// Source and Target are the full records, ignored columns included,
	// so the renderer can show them for context.
	Source Record `json:"source"`
	Target Record `json:"target"`

	// Changed maps column name to the differing value pair. Only
	// non-ignored columns whose canonical values differ appear here.
	Changed map[string]ValuePair `json:"changed"`
}

// Result is the outcome of comparing one category. Every identity present
// in either input lands in exactly one of the four buckets.
type Result struct {
	// Matches holds source records whose target counterpart is equal on
	// every non-ignored column.
	Matches []Record `json:"matches"`

	// Differences holds record pairs with field-level drift.
	Differences []DiffEntry `json:"differences"`

	// SourceOnly holds source records with no target counterpart.
	SourceOnly []Record `json:"source_only"`

	// TargetOnly holds target records with no source counterpart.
	TargetOnly []Record `json:"target_only"`
}

// Total returns the number of distinct identities across all buckets.
func (r *Result) Total() int {
	return len(r.Matches) + len(r.Differences) + len(r.SourceOnly) + len(r.TargetOnly)
}

// HasDrift reports whether the category shows any discrepancy.
func (r *Result) HasDrift() bool {
	return len(r.Differences) > 0 || len(r.SourceOnly) > 0 || len(r.TargetOnly) > 0
}

// Compare reconciles two normalized datasets for one category.
//
// Records are correlated by the identity built from cfg.KeyColumns, then
// classified as a match, a difference, source-only, or target-only.
// Equality is checked column by column over the union of both schemas,
// excluding ignored columns, with both values reduced to canonical strings
// first (nil becomes ""). Bucket order follows the respective dataset scan
// order, which keeps output deterministic. A duplicated identity within one
// dataset collapses to its last record and is emitted at the position of
// its first occurrence.
//
// The only possible error is a ConfigurationError: a key column missing
// from a non-empty dataset's schema. Empty datasets are not schema-checked.
func Compare(cfg CategoryConfig, source, target Dataset) (*Result, error) {
	if err := checkKeyColumns(cfg, source, "source"); err != nil {
		return nil, err
	}
	if err := checkKeyColumns(cfg, target, "target"); err != nil {
		return nil, err
	}

	// Both sides index by identity before classification, so a duplicated
	// identity within one dataset resolves to a single record (last wins)
	// and is classified exactly once.
	sourceByIdentity := make(map[string]Record, len(source.Records))
	for _, rec := range source.Records {
		sourceByIdentity[identityKey(cfg, rec)] = rec
	}
	targetByIdentity := make(map[string]Record, len(target.Records))
	for _, rec := range target.Records {
		targetByIdentity[identityKey(cfg, rec)] = rec
	}

	result := &Result{
		Matches:     []Record{},
		Differences: []DiffEntry{},
		SourceOnly:  []Record{},
		TargetOnly:  []Record{},
	}

	compared := make(map[string]struct{}, len(source.Records))
	diffColumns := unionColumns(source, target)

	for _, rec := range source.Records {
		identity := identityOf(cfg, rec)
		key := strings.Join(identity, IdentityDelimiter)
		if _, ok := compared[key]; ok {
			continue
		}
		compared[key] = struct{}{}
		src := sourceByIdentity[key]

		tgt, ok := targetByIdentity[key]
		if !ok {
			result.SourceOnly = append(result.SourceOnly, src)
			continue
		}

		changed := changedColumns(cfg, diffColumns, src, tgt)
		if len(changed) == 0 {
			// The source record stands in for the pair.
			result.Matches = append(result.Matches, src)
			continue
		}

		result.Differences = append(result.Differences, DiffEntry{
			Identity: identity,
			Source:   src,
			Target:   tgt,
			Changed:  changed,
		})
	}

	for _, rec := range target.Records {
		key := identityKey(cfg, rec)
		if _, ok := compared[key]; ok {
			continue
		}
		compared[key] = struct{}{}
		result.TargetOnly = append(result.TargetOnly, targetByIdentity[key])
	}

	return result, nil
}

// checkKeyColumns verifies the key columns exist in a non-empty dataset's schema.
func checkKeyColumns(cfg CategoryConfig, d Dataset, side string) error {
	if d.Empty() {
		return nil
	}
	for _, col := range cfg.KeyColumns {
		if !d.HasColumn(col) {
			return &ConfigurationError{Category: cfg.Name, Column: col, Side: side}
		}
	}
	return nil
}

// identityOf extracts the canonical key-column value tuple of a record.
// A nil key value joins in as "" like any other value; see the package
// doc for why that is fragile but kept.
func identityOf(cfg CategoryConfig, rec Record) []string {
	identity := make([]string, len(cfg.KeyColumns))
	for i, col := range cfg.KeyColumns {
		identity[i] = utils.Canonical(rec[col])
	}
	return identity
}

func identityKey(cfg CategoryConfig, rec Record) string {
	return strings.Join(identityOf(cfg, rec), IdentityDelimiter)
}

// unionColumns merges both schemas, keeping source order and appending
// target-only columns after.
func unionColumns(source, target Dataset) []string {
	columns := make([]string, 0, len(source.Columns)+len(target.Columns))
	seen := make(map[string]struct{}, cap(columns))
	for _, c := range source.Columns {
		columns = append(columns, c)
		seen[c] = struct{}{}
	}
	for _, c := range target.Columns {
		if _, ok := seen[c]; !ok {
			columns = append(columns, c)
		}
	}
	return columns
}

// changedColumns computes the field-level delta of a correlated pair.
// Identity columns are not special-cased: they are compared like any other
// column and are equal by construction.
func changedColumns(cfg CategoryConfig, columns []string, src, tgt Record) map[string]ValuePair {
	var changed map[string]ValuePair
	for _, col := range columns {
		if cfg.Ignored(col) {
			continue
		}
		sv := utils.Canonical(src[col])
		tv := utils.Canonical(tgt[col])
		if sv != tv {
			if changed == nil {
				changed = make(map[string]ValuePair)
			}
			changed[col] = ValuePair{Source: sv, Target: tv}
		}
	}
	return changed
}
