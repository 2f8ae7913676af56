// Package geoip maps network addresses to country names using a MaxMind
// GeoIP2/GeoLite2 database.
//
// A Lookup is opened once at process start, either memory-mapped from disk
// with Open or from an in-memory copy with FromBytes, and then shared by all
// request handlers. The underlying reader is immutable and safe for
// concurrent use, so no locking is involved.
//
// Country is total: it never returns an error. Geography is enrichment, so a
// malformed address, a missing record or a reader failure is logged and the
// sentinel Unknown is returned instead.
//
//	geo, err := geoip.Open("GeoLite2-Country.mmdb", geoip.WithLogger(log))
//	if err != nil {
//		return err // refuse to start
//	}
//	defer geo.Close()
//
//	country := geo.Country(ctx, "203.0.113.7") // "Unknown" when not found
package geoip
