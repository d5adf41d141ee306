// Package app wires the reduction pipeline for the command-line driver:
// dataset loading, Pearson correlation, sanitization, greedy reduction and
// reporting, once per configured dataset.
package app
