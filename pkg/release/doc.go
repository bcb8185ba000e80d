// Package release implements the Release module of the Nina Protocol SDK:
// publishing releases through hubs, purchasing editions, revenue share
// collection and transfer, closing editions, and metadata updates. Write
// operations build instructions against the Nina program and re-fetch state
// from the indexing API once the transaction confirms.
//
// Amounts are native integer amounts of the release's payment mint. Revenue
// share percentages are expressed in millionths, so 250_000 is a 25% share.
//
// This package is part of the Nina Protocol SDK for Go.
// See https://docs.ninaprotocol.com for more information about the protocol.
package release
