// Package resultio is the result-serialization collaborator named by
// spec.md §6 ("Separation matrix: for each unordered pair ... the
// witnessing S"): BuildDocument renders a final pcgraph.Graph and
// sepset.Matrix into a Document, and WriteGraph / WriteSeparationMatrix /
// WriteDocument encode it as JSON or YAML for a CLI or downstream
// orientation step to consume. Not exercised by the core's own test
// surface (spec.md §1: "Out of scope (external collaborators) ...
// result serialization").
package resultio
