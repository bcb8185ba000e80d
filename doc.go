// The Nina Protocol SDK for Go is the official Go implementation of the
// Nina client libraries. It provides a set of packages for interacting
// with the Nina media-publishing program on Solana and with the Nina
// indexing API, a read-only mirror of protocol state.
//
// # Modules
//
// The SDK exposes one package per protocol module:
//
//   - release: publishing, purchasing, and revenue shares for releases
//   - hub: hub lifecycle, collaborators, and curated content
//   - exchange: secondary-market offers against release editions
//   - post: hub-published posts
//
// Supporting packages:
//
//   - indexer: client for the Nina indexing API
//   - uploader: client for the Nina file service (metadata and artwork)
//   - shared: networks, wallets, token helpers, transaction submission
//
// # Documentation
//
// Protocol documentation: https://docs.ninaprotocol.com
//
// # Installation
//
//	go get github.com/nina-protocol/nina-sdk-go@latest
package nina_sdk_go
