// Package naming derives the short base-36 names given to copied images.
//
// An identifier looks like 0n3-5-00qh-jqd: a two digit base-36 year offset
// from 2000, the base-36 month, the decimal day, the packed time of day and
// the photographer's initials. Run folders and per-date folders reuse the
// same encoding.
package naming
