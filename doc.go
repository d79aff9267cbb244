// Package mdplan is the core of an online planner for sequential decision
// problems modeled as Markov Decision Processes: a Monte Carlo Tree Search
// engine with two interchangeable variants.
//
// The "mcts" subpackage implements the vanilla variant, for finite,
// enumerable action spaces. The "mcts/dpw" subpackage implements Double
// Progressive Widening, for large or continuous state and action spaces.
// Both variants consume an mdp.Model supplied by the embedder and are
// configured through the domain-knowledge seams in the "seam" subpackage.
//
// The MDP model itself, tree visualization, front-ends, and solver
// serialization are out of scope; this module only builds and searches the
// tree.
package mdplan
