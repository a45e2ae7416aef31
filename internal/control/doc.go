// Package control implements the search-frontier machinery of the
// given-clause algorithm: the priority queue of pending clauses and the
// integration routines that expand a freshly selected clause against the
// processed clause set.
//
// ARCHITECTURE:
//
// Single-Writer Search Loop:
// Everything here runs to completion synchronously inside one logical
// saturation loop. The queue is not internally synchronized; a parallel
// deployment must serialize Insert/GetBest under a single writer at a time.
//
// Scheduling:
// The queue is a plain binary min-heap keyed only by the caller-supplied
// evaluation. Ties have no secondary key; whichever node heap mechanics
// leave at the root wins. The clause reference and auxiliary payload are
// opaque to the queue: it never inspects, copies or compares them.
//
// Integration:
// AllResolvents and AllFactors are pure enumerations. They skip nil rule
// results (inference misses), never deduplicate, never filter tautologies
// and never insert anywhere; feeding survivors back into the frontier is the
// loop's job.
package control
