// Package report renders reduction results: a plain-text summary, a JSON
// document and a PNG/SVG heatmap of the validated correlation matrix.
//
// Rendering is kept out of netcore; the library returns values and never prints.
package report
