// Package hub implements the Hub module of the Nina Protocol SDK: hub
// creation and configuration, collaborator management, curated content, and
// fee withdrawal. Write operations build instructions against the Nina
// program and re-fetch state from the indexing API once the transaction
// confirms.
//
// This package is part of the Nina Protocol SDK for Go.
// See https://docs.ninaprotocol.com for more information about the protocol.
package hub
