// Package catalog is the data source side of the drift detector: it runs
// one fixed information_schema query per object category against a single
// endpoint and hands the raw row-sets to the comparison engine.
//
// The fetcher never fails a run. A category whose query errors (missing
// privileges, older server without the catalog view) is logged and
// reported as absent, which downstream normalizes to an empty dataset.
// Column aliases in the query text are the contract with the descriptor
// table in core/compare; the two must stay in sync.
package catalog
