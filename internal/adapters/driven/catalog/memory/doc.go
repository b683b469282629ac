// Package memory provides the in-memory implementation of the
// catalog driven port. The catalog is a fixed dataset compiled into
// the binary: three intent buckets plus a capped default bucket
// derived from their union.
package memory
