package resultio

import "github.com/kkrpk/lock-free-pc-MDF/pcgraph"

// BuildDocument assembles the serializable Document from a final graph and
// its separation witnesses, the two collaborator outputs spec.md §6 names
// ("Final undirected graph" and "Separation matrix"). sepGet is called for
// every non-edge pair {i,j}, i<j, mirroring sepset.Matrix.Get's signature
// without importing sepset here so resultio stays decoupled from the
// concurrency internals of the store it reads.
func BuildDocument(graph *pcgraph.Graph, sepGet func(i, j int) ([]int, bool, error)) (*Document, error) {
	p := graph.NumVariables()
	doc := &Document{NumVariables: p}

	for i := 0; i < p; i++ {
		nbrs, err := graph.Neighbors(i)
		if err != nil {
			return nil, err
		}
		for _, j := range nbrs {
			if j > i {
				doc.Edges = append(doc.Edges, Edge{I: i, J: j})
			}
		}
	}

	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			has, err := graph.HasEdge(i, j)
			if err != nil {
				return nil, err
			}
			if has {
				continue
			}
			s, ok, err := sepGet(i, j)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			doc.Witnesses = append(doc.Witnesses, Witness{I: i, J: j, S: s})
		}
	}

	return doc, nil
}
