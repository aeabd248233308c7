// Package domain holds the error values shared by the pulse runtime and its
// public API.
package domain
