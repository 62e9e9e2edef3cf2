// Package ir holds the value model used to give run records a stable,
// content-addressed identity.
//
// Records are converted into IRValue trees and serialized with
// MarshalCanonical (RFC 8785 style: sorted keys, NFC strings, no HTML
// escaping). Floats are not representable, so a record's digest never
// depends on float formatting.
package ir
