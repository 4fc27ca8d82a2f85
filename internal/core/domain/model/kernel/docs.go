// Package kernel provides shared value objects used across the food-bank
// ordering domain: entity identifiers (UUID) and the caller identity
// (Actor) consulted by authorization rules.
package kernel
