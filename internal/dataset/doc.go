// Package dataset loads the raw millennium dataset table from local
// files, HTTP sources, or Excel workbooks and hands its rows to the
// enrichment pipeline untouched. All parsing of cell content happens
// downstream; this package only deals with transport and table shape.
package dataset
