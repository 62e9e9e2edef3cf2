// Package walk generates seeded one-dimensional random walks.
//
// A walk is fully determined by its Params: identical (count, x0, step,
// seed) always yield an identical PositionSequence. Every call builds its
// own generator stream from the seed, so there is no package-level random
// state and independent walks can run in parallel.
//
// # Generator
//
// The stream is the 32-bit Mersenne Twister (MT19937). Integer seeds are
// expanded with init_by_array over the little-endian 32-bit words of the
// seed's absolute value, and floats carry 53 bits built from two outputs.
// This matches the construction used by CPython's random module, which is
// what makes the reference walks for seeds 1 and 42 reproducible here.
// Reproducing walks bit-for-bit in other implementations is not promised.
//
// # Steps
//
// Each step draws u uniformly from (-1, +1). u > 0 moves +step; any other
// draw, including exactly 0, moves -step.
package walk
