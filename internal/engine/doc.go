// Package engine evaluates contracted Cartesian Gaussian basis functions.
//
// It provides the numerics the domain layer treats as an external service:
// atomic orbital values at arbitrary points, contraction of those values with
// a density matrix, and one-electron 1/|r-C| integrals about an explicit
// origin C. Integrals use the McMurchie-Davidson Hermite expansion with the
// Boys function. All lengths are in Bohr.
package engine
