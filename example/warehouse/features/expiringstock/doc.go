// Package expiringstock implements the Expiring Stock query use case.
//
// This feature provides a pure query operation that returns the stock items whose
// best-before boundary falls within a lookahead window, grouped by warehouse zone
// so pickers can clear one zone at a time. Items that are already out of stock are
// excluded, there is nothing left to pull from the shelf for them.
package expiringstock
