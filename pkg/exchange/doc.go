// Package exchange creates and settles secondary-market offers for release
// tokens on the Nina program. An exchange escrows the initializer's side of
// the trade until it is accepted or cancelled; accepted sales pay the
// release's resale royalty out of the proceeds.
package exchange
