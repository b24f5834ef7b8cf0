// Package gntaxa holds build information of the gntaxa application.
package gntaxa

var (
	// Version of gntaxa, set during build.
	Version = "v0.1.0"

	// Build timestamp, set during build.
	Build = "n/a"
)
