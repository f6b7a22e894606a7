// Package spies provides test doubles for the specification observability interfaces.
package spies
