// Package commonpass answers whether a candidate password is in a
// precomputed set of common passwords, using a read-only bloom filter
// dataset.
//
// A Handle is owned by the caller. Several handles, for example one per
// dataset tier, can be loaded side by side. A query against an unloaded handle
// is not an error, it reports "not common".
//
// False positives are expected. A positive result means "probably common",
// never "definitely common".
package commonpass
