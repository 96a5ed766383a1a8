package worker

import (
	"github.com/kkrpk/lock-free-pc-MDF/indeptest"
)

// Context is the small immutable value every worker in a level shares:
// the significance threshold, the level (conditioning-set cardinality),
// and the independence test itself. Spec §9's "Cyclic ownership" note asks
// for exactly this: the worker needs read access to α, n, and correlation,
// without being made aware of the Engine that constructed them.
type Context struct {
	Alpha float64
	Level int
	Test  *indeptest.GaussTest
}
