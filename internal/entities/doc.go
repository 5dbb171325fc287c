// Package entities provides the core data structures shared by the dice
// statistics pipeline: the run configuration, the expected and observed
// distributions indexed by sum, and the goodness-of-fit result.
package entities
