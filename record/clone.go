package record

import "kvcoding/coding"

// Clone copies every entry into a new map[string]any and wraps it in a new Record.
// Values implementing coding.Cloneable are deep cloned; other values, including
// nested maps and slices and nil pointers, are shared with the source.
func (r *Record) Clone() *Record {
	copied := make(map[string]any, r.Count())
	for k, v := range r.All() {
		if c, ok := v.(coding.Cloneable); ok && !coding.IsNil(v) {
			v = c.DeepClone()
		}

		copied[k] = v
	}

	return &Record{data: copied, kvc: coding.GenericMap()}
}

// DeepClone implements coding.Cloneable so nested records are cloned recursively.
func (r *Record) DeepClone() any {
	return r.Clone()
}
