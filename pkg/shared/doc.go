// Package shared provides the common infrastructure used by every module
// package in the Nina Protocol SDK: network and endpoint resolution, wallet
// configuration, token account helpers, Anchor instruction encoding, and
// transaction submission with confirmation.
//
// This package is part of the Nina Protocol SDK for Go.
// See https://docs.ninaprotocol.com for more information about the protocol.
package shared
