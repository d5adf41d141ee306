// Package cli parses command-line arguments, merges them over an optional
// HCL configuration file and produces an app.Config.
package cli
