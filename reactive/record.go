package reactive

import "sort"

// record is the underlying target behind a map-shaped handle. It shares the
// caller's map in place. A record may delegate reads to a proto record,
// which mirrors how the wrapped data can shadow fields of a shared parent
// object; writes always land on the record itself.
type record struct {
	fields map[string]any
	proto  *record

	// origin is the identity of the raw map this record was promoted from,
	// used to evict the promotion cache on Release.
	origin uintptr
}

func newRecord(fields map[string]any) *record {
	if fields == nil {
		fields = map[string]any{}
	}
	return &record{fields: fields}
}

// own reports the value for name on this record only, ignoring the proto
// chain. SET vs ADD classification always uses own presence.
func (r *record) own(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// ownKeys returns the record's own field names in sorted order, so
// enumeration is deterministic run to run.
func (r *record) ownKeys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
