// Package datasource is the CSV-ingestion collaborator named by spec.md
// §1 ("Out of scope: Parsing the input CSV") and SPEC_FULL.md §6: it loads
// a rectangular numeric CSV into a *linalg.Dense oriented to the
// variables-by-samples convention the engine package requires, and is not
// exercised by the core's own test surface.
package datasource
