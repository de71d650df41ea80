// Package coding provides key-value coding: uniform get, set, remove and
// enumerate operations over values of different shapes.
//
// A Strategy implements the operations for one shape. A Registry picks the
// strategy for a value from its runtime type, consulting registered matchers
// in priority order. The Default registry knows three shapes:
//   - Bag: dynamic property containers implementing the Bag interface
//   - struct: struct values (read-only) and pointers to structs, by reflection
//   - map: any map with string-kind keys
//
// Values stored into typed slots pass through a conversion step governed by
// options.Options: identical and assignable values are stored as is, other
// primitives are converted only within the allowed primitive categories.
//
// Strategies hold no locks. Callers serialize access to shared values.
package coding
