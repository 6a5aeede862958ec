// Package fractal generates point sets for Iterated Function Systems (IFS):
// finite families of contractive affine maps whose attractors are fractals
// such as the Sierpinski triangle, the Barnsley fern or the Heighway dragon.
//
// 🚀 What is in the box?
//
//	• Chaos game: a random walk driven by the map weights (ifs.Random)
//	• Recursive subdivision: every map applied to every point, round by round
//	  (ifs.Deterministic)
//	• A discrete sampler doing inverse-transform sampling (sampler)
//	• A named catalog of classic systems, extensible from YAML (catalog)
//	• A CLI that prints points as CSV (cmd/ifsgen)
//
// ✨ Guarantees
//
//   - Reproducible: the same seed or scripted source gives the same points
//   - Explicit failures: sentinel errors, never a silently substituted default
//   - No global state: each call owns its buffers and its random stream
//
// Layout:
//
//	matrix/   — dense 2-D matrices: MatVec, Mul, validators
//	sampler/  — discrete distributions, seed policy, derived streams
//	ifs/      — Point, AffineMap, Definition, Random, Deterministic, Refine, Bounds
//	catalog/  — name → definition registry with aliases and YAML loading
//	cmd/      — ifsgen command
//
// Quick start:
//
//	def, _ := catalog.Get("fern")
//	pts, _ := ifs.Random(def, ifs.WithNumPoints(50000), ifs.WithSeed(7))
//	box, _ := ifs.Bounds(pts)
//
// Rendering is left to the caller.
package fractal
