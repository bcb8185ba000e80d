// Package uploader pushes release metadata and media files to the Nina file
// service, which pins them to permanent storage. JSON metadata is
// brotli-compressed before upload; large media uploads run as asynchronous
// jobs that are polled until they complete.
package uploader
