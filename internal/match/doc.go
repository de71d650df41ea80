// Package match provides name normalization and type compatibility scoring
// used when resolving keys and assigning values on structured records.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for loose key lookup
//   - Index: resolves loosely spelled keys to canonical field names
//   - ScoreTypeCompatibility: scores reflect.Type compatibility for assignment
package match
