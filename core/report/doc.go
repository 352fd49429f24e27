// Package report turns the aggregator output into consumable artifacts:
// a console summary table, a JSON document, a standalone HTML page, and
// an Excel workbook, with optional publishing to object storage.
//
// The package only reads the comparison results it is handed; it never
// mutates them and never reaches back into the data source.
package report
