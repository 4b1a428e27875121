// Package parlaylib provides functions and data structures for expressing
// parallel algorithms, centered on a cache-oblivious, low-depth parallel
// sample sort. While Go is primarily designed for concurrent programming,
// it is also usable to some extent for parallel programming, and this
// library provides convenience functionality to turn otherwise sequential
// algorithms into parallel algorithms, with the goal to improve
// performance.
//
// parlaylib/parallel provides simple functions for executing series of
// thunks or predicates, as well as thunks, predicates, or reducers over
// ranges in parallel. This is the fork-join contract every other package in
// this module is built on.
//
// parlaylib/speculative provides speculative implementations of most of the
// functions from parlaylib/parallel. These implementations not only execute
// in parallel, but also attempt to terminate early as soon as the final
// result is known.
//
// parlaylib/sequential provides sequential implementations of all functions
// from parlaylib/parallel, for testing and debugging purposes.
//
// parlaylib/relocate provides the destructive-move primitive used by the
// sample sort's in-place variant to move values without a secondary copy.
//
// parlaylib/uninit provides Buffer, the scratch-space abstraction used as
// the intermediate between block-sorted storage and bucket-laid-out output.
//
// parlaylib/transpose provides the bucket transpose that converts
// block-major layout into bucket-major layout.
//
// parlaylib/sort provides parallel sorting algorithms, including the
// sequential base sort the sample sort delegates to below its threshold.
//
// parlaylib/samplesort provides the sample sort engine itself: a copying
// (optionally stable) variant and a fully in-place (unstable) variant.
//
// parlaylib/sync provides an efficient parallel map implementation.
//
// parlaylib/pipeline provides functions and data structures to construct
// and execute parallel pipelines.
//
// This module is grounded on ExaScience's pargo (https://github.com/
// ExaScience/pargo) for its fork-join layer and sorting toolbox, and on the
// cache-oblivious sample sort described in Blelloch, Gibbons, and
// Simhadri's "Low depth cache-oblivious algorithms" (SPAA 2010) for the
// sample sort engine itself.
package parlaylib
