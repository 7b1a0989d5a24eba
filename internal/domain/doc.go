// Package domain holds the core types shared across schedenv: the
// workspace configuration, the bootstrap stage model, and the error
// taxonomy. It depends on nothing outside the standard library.
package domain
