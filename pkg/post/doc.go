// Package post publishes and updates text content inside hubs on the Nina
// program. Posts are addressed by a hub-scoped slug and may reference a
// release, which reposts that release into the hub alongside the text.
package post
