// Package budget computes personal budget ledgers.
//
// A [Schedule] holds recurring and one-off cash-flow [Item]s. Expanding a
// schedule over a date [Range] turns sparse recurrence rules into concrete
// calendar occurrences; a [Budget] merges them with an initial amount into a
// chronological transaction table with running balances, queryable at any date
// in the window.
//
// The engine is purely computational: it accepts typed values, performs no
// I/O, and returns structured rows for external rendering. The cmd package
// provides a command line on top of it.
package budget
