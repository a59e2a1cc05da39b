// Package moldice implements the Molecular Dice pseudo-random number
// generator: a physically-inspired PRNG whose state is the evolving
// microstate of a simulated gas of non-interacting point particles
// subjected to stochastic pairwise collisions in the style of the
// Direct Simulation Monte Carlo rotation scheme.
//
// Positions are harvested as uniform deviates, post-collision relative
// velocities as Gaussian deviates, and per-axis kinetic energies as
// exponential deviates. A generator is single-threaded and not
// re-entrant: all of its state belongs to one instance, and sharing it
// across goroutines requires external serialization.
package moldice
