// Package indexer provides a client for the Nina indexing API used by the
// module packages in the Nina Protocol SDK. It handles release, hub, post,
// exchange, and account lookups against the REST API.
//
// The indexing API provides a read-only view of on-chain protocol state,
// enabling applications to query releases, hubs, and market activity without
// deserializing program accounts themselves. Module clients re-fetch state
// from the indexer after a transaction confirms.
//
// This package is part of the Nina Protocol SDK for Go.
// See https://docs.ninaprotocol.com for more information about the protocol.
package indexer
