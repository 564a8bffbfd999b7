// Package types defines the shared value objects of the Picsart Creative
// APIs SDK: the client configuration, response metadata, image references,
// enums, and the typed error set returned by every operation.
package types
