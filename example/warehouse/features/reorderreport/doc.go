// Package reorderreport implements the Reorder Report query use case.
//
// This feature provides a pure query operation that returns the stock items a
// purchaser should reorder: items that are out of stock plus items whose quantity
// has dropped to or below the reorder threshold.
//
// The projection is a read-only operation over an in-memory stock list, it does
// not modify any data.
package reorderreport
