// Package ifs generates point sets approximating attractors of Iterated
// Function Systems: finite collections of contractive affine maps on the plane.
//
// 🚀 What is an IFS?
//
//	An IFS is a list of affine maps w_i(z) = A_i·z + T_i. Its attractor is the
//	unique compact set K with K = ∪ w_i(K): the Sierpinski triangle, the
//	Barnsley fern, the Heighway dragon and friends.
//
// ✨ Two generators:
//   - Random (chaos game): start at (0, z0); at every step pick map r with
//     probability p_r and move z ← A_r·z + T_r. Output length is exactly
//     NumPoints. Randomness comes from an injected sampler.Source.
//   - Deterministic (recursive subdivision): start at (0, z0); every round
//     applies every map to every point produced by the previous round.
//     After n rounds the output holds 1 + L + L² + … + Lⁿ points.
//
// ⚠️ Known limitation:
//
//	Deterministic ignores the probability weights entirely; all maps are
//	applied unconditionally. For unevenly weighted systems (the fern: 1%,
//	85%, 7%, 7%) the point density therefore does not match the chaos-game
//	proportions. How to fold weights into exhaustive subdivision is an open
//	question and no weighting scheme is invented here.
//
// ⚙️ Usage:
//
//	def, _ := catalog.Get("fern")
//	pts, err := ifs.Random(def, ifs.WithNumPoints(50000), ifs.WithSeed(7))
//	tree, err := ifs.Deterministic(def, ifs.WithNumIter(6))
//
// Resource warning:
//
//	Deterministic grows exponentially. With L=4 maps, NumIter=9 already
//	yields 349 525 points and NumIter=10 yields 1 398 101. This is expected.
//	Any request above MaxPoints fails with ErrInvalidArgument up front.
//
// Refinement:
//
//	Refine(def, k) composes every k-long address into one map. One
//	Deterministic round of the result equals round k of def; one chaos-game
//	step equals k steps.
//
// Concurrency:
//
//	Every call owns its output buffer. Definitions are read-only and may be
//	shared. A *rand.Rand source is not goroutine-safe; give each goroutine its
//	own stream (see sampler.Derive).
package ifs
