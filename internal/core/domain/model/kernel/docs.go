// Package kernel contains shared value objects used across the domain model.
// Types in this package are immutable, validated at construction and safe for
// concurrent use.
package kernel
