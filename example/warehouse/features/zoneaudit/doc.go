// Package zoneaudit implements the Zone Audit query use case.
//
// This feature provides a pure query operation that reports the occupancy of one
// warehouse zone together with its rule breaches: items that have already expired
// and perishable items that were stored without a best-before boundary.
package zoneaudit
