package resultio

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding for WriteGraph / WriteSeparationMatrix.
type Format int

const (
	// JSON encodes the Document with encoding/json, two-space indented.
	JSON Format = iota
	// YAML encodes the Document with gopkg.in/yaml.v3.
	YAML
)

// WriteGraph writes doc's edge list to w in the requested format. It is
// the collaborator spec.md §6 names for "Final undirected graph" output;
// the core never calls this itself (SPEC_FULL.md §2).
func WriteGraph(w io.Writer, doc *Document, format Format) error {
	return write(w, struct {
		NumVariables int    `json:"num_variables" yaml:"num_variables"`
		Edges        []Edge `json:"edges" yaml:"edges"`
	}{doc.NumVariables, doc.Edges}, format)
}

// WriteSeparationMatrix writes doc's witness list to w in the requested
// format, the collaborator output for spec.md §6's "Separation matrix".
func WriteSeparationMatrix(w io.Writer, doc *Document, format Format) error {
	return write(w, struct {
		NumVariables int       `json:"num_variables" yaml:"num_variables"`
		Witnesses    []Witness `json:"witnesses" yaml:"witnesses"`
	}{doc.NumVariables, doc.Witnesses}, format)
}

// WriteDocument writes the full Document (edges and witnesses together) to
// w in the requested format. Convenience for callers that want a single
// artifact rather than the two collaborator-named outputs separately.
func WriteDocument(w io.Writer, doc *Document, format Format) error {
	return write(w, doc, format)
}

func write(w io.Writer, v interface{}, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("resultio: unknown format %d", format)
	}
}
