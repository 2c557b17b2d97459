// Package normaliser rewrites store-native document trees into values
// safe for JSON serialization. Object IDs become hex strings, timestamps
// become RFC 3339 text, and binary payloads become base64 - unless a
// sibling header declares them as PDF or JSON content, in which case the
// classifier replaces them with extracted text or decoded structure.
//
// Classification trusts the document's own declared header and never
// sniffs magic bytes; a mislabeled file gets the labeled behaviour.
package normaliser
