// Package render formats query results for people. It is the only place in
// the module that knows how anything looks; every other package returns
// plain data.
//
// A Printer writes to any io.Writer. With color enabled, headings and
// highlights are styled with lipgloss; without it the output is plain text
// suitable for pipes and tests. Tabular output is aligned with
// text/tabwriter.
package render
