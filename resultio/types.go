package resultio

// Edge is one retained unordered pair in the output graph.
type Edge struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
}

// Witness is one separation-set entry for a pair the engine deleted.
type Witness struct {
	I int   `json:"i" yaml:"i"`
	J int   `json:"j" yaml:"j"`
	S []int `json:"s" yaml:"s"`
}

// Document is the full serializable result: the skeleton's edge list (spec
// §6 "Final undirected graph") plus the separation witnesses (spec §6
// "Separation matrix") for every deleted pair.
type Document struct {
	NumVariables int       `json:"num_variables" yaml:"num_variables"`
	Edges        []Edge    `json:"edges" yaml:"edges"`
	Witnesses    []Witness `json:"witnesses" yaml:"witnesses"`
}
