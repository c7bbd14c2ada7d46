// Package encode builds integer linear and quadratic programs whose optimal
// solutions order the nodes of a layered graph.
//
// # Overview
//
// Given a layered graph, [Build] assembles an [lp.Program] minimizing one of
// eight objectives: crossing count (total, bottleneck), edge stretch
// (stretch, bn_stretch, quad_stretch), or edge verticality (vertical,
// bn_vertical, quad_vertical). Ordering, position, and edge-marker
// constraints are always present so any solution decodes back into a fully
// positioned graph; the remaining constraint families are included only when
// the objective or a cap needs them.
//
// # Caps
//
// Each aggregate measure can also be capped independently of the objective,
// e.g. minimize total stretch subject to at most ten crossings. A cap forces
// its defining constraint family into the program even when the objective
// lies elsewhere.
//
// # Determinism
//
// Constraint and variable order follow graph insertion order, so the same
// graph and options produce identical bytes. [Options.Seed] shuffles
// constraint and term order reproducibly, which is useful for benchmarking
// solver sensitivity to row order.
package encode
