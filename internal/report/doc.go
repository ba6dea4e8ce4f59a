// Package report lays out the cash book, the realization report, the
// summary and the balance sheet as printable tables and renders them
// as Excel workbooks or PDF documents.
package report
