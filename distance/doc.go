// Package distance computes hop distances on unweighted graphs.
//
// All functions are built on bfs.BFS:
//
//   - Distance(g, a, b): level of b in the BFS tree of a, stopping as soon
//     as b is discovered; core.Unreachable (-1) when b is in another component.
//   - Eccentricity(g, v): the largest level in the BFS tree of v.
//   - Diameter(g, opts...): the largest finite distance between two nodes.
//
// Diameter modes:
//
//	exact   (N <= SampleThreshold, or threshold disabled):
//	        one BFS per node; O(N·(N+E)).
//	sampled (N >  SampleThreshold):
//	        ⌊log2 N⌋ distinct origins drawn without replacement; O(log N·(N+E)).
//	        The sampled value is a LOWER bound on the true diameter, never an
//	        upper bound.
//
// On a disconnected graph the default policy (MaxComponentDiameter) returns
// the largest diameter among the components; UnreachableIfDisconnected
// returns core.Unreachable instead.
//
// Sampling draws from a *rand.Rand supplied with WithRand or WithSeed; with
// neither, a fixed default seed keeps runs reproducible.
package distance
