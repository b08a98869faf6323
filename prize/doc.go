// Package prize decides which bonus cells are worth a detour from a base path.
//
// Each prize is judged on its own against a fixed base path. For every base
// node the pathfinder searches a route to the prize; the cheapest round trip
// over all viable nodes is compared with the prize's points, and the prize is
// kept only if the round trip costs strictly less. This is not a joint tour
// optimisation: prizes never compete or combine.
//
// Round-trip models:
//
//	– Mirrored (default): the return costs what the outbound leg costs.
//	– Directed: the return leg is searched separately. Edges are one-way, so
//	  it may be longer or missing; a missing return makes the node not viable.
//
// Options:
//
//	– WithWorkers(n):        evaluate up to n prizes concurrently (errgroup).
//	– WithRoundTrip(mode):   Mirrored or Directed.
//	– WithContext(ctx):      cancel the whole pass.
//	– WithSearchOptions(..): forward astar options, e.g. an expansion budget.
//	– WithLogger(l):         debug records for every keep/drop decision.
//
// The maze is only read, so concurrent evaluation shares it without locking.
// Results are returned in prize input order whatever the worker count.
package prize
