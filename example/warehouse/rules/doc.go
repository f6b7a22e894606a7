// Package rules provides the leaf specifications for warehouse stock items.
//
// Every rule constructor validates its parameters up front and returns a
// specification whose evaluation is total: a stock item with missing or empty data
// simply does not satisfy the rule, it never causes an evaluation failure.
package rules
