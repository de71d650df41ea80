// Package record exposes values of any supported shape as associative
// collections of string keys.
//
// A Record wraps one value and the coding.Strategy resolved for it when the
// Record is created. Every operation delegates to that strategy, so the same
// code reads and writes plain maps, structs and property bags:
//
//	rec, err := record.New(&order)
//	if err != nil {
//		return err
//	}
//	if err := rec.Set("status", "shipped"); err != nil {
//		return err
//	}
//
// Records mutate the wrapped value in place and are not safe for concurrent use.
package record
