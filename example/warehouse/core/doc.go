// Package core provides the warehouse domain records used as illustrative example
// data for the specification library: products, stock items, and the value objects
// they carry. All records are built through Build* factory functions that validate
// their input at construction time.
package core
