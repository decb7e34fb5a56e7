package reactive

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotWrappable is returned by Wrap for values that are not aggregates.
var ErrNotWrappable = errors.New("reactive: only maps, slices and handles can be wrapped")

// Handle is the reactive wrapper over one underlying aggregate. Every read
// method registers the active runner against the facet it touched; every
// write method notifies subscribers of exactly the facets it changed.
// Exactly one of rec / lst is set.
type Handle struct {
	rx  *Runtime
	rec *record
	lst *list

	shallow  bool
	readOnly bool
}

type wrapMode struct {
	shallow  bool
	readOnly bool
}

type wrapConfig struct {
	mode  wrapMode
	proto *Handle
}

// WrapOption configures how a value is wrapped.
type WrapOption func(*wrapConfig)

// Shallow wraps only the top level: aggregate values read through the
// handle come back raw instead of wrapped.
func Shallow() WrapOption {
	return func(c *wrapConfig) { c.mode.shallow = true }
}

// ReadOnly produces a handle whose reads are untracked and whose writes are
// rejected with a diagnostic.
func ReadOnly() WrapOption {
	return func(c *wrapConfig) { c.mode.readOnly = true }
}

// Extending gives a freshly wrapped record a read fallback: lookups missing
// on the record continue into parent's record. Writes never follow the
// chain; they always land on the handle's own record.
func Extending(parent *Handle) WrapOption {
	return func(c *wrapConfig) { c.proto = parent }
}

// Wrap returns the reactive handle for v, which must be a map[string]any, a
// []any, or an existing *Handle. Wrapping the same underlying value twice
// under the same mode yields the same handle, with one exception: an empty
// []any has no stable identity, so each Wrap of one returns a fresh handle.
// Hold on to the returned handle when identity matters.
func Wrap(rx *Runtime, v any, opts ...WrapOption) (*Handle, error) {
	var cfg wrapConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	h, err := rx.wrap(v, cfg.mode)
	if err != nil {
		return nil, err
	}
	if cfg.proto != nil && h.rec != nil && h.rec.proto == nil {
		if cfg.proto.rec == nil {
			return nil, fmt.Errorf("%w: proto must be a record handle", ErrNotWrappable)
		}
		h.rec.proto = cfg.proto.rec
	}
	return h, nil
}

// MustWrap is Wrap for call sites that know v is wrappable.
func MustWrap(rx *Runtime, v any, opts ...WrapOption) *Handle {
	h, err := Wrap(rx, v, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

func (rx *Runtime) wrap(v any, mode wrapMode) (*Handle, error) {
	switch t := v.(type) {
	case *Handle:
		if t.mode() == mode {
			return t, nil
		}
		return rx.wrapTarget(t.target(), mode), nil
	case *record:
		return rx.wrapTarget(t, mode), nil
	case *list:
		return rx.wrapTarget(t, mode), nil
	case map[string]any:
		return rx.wrapTarget(rx.recordFor(t), mode), nil
	case []any:
		return rx.wrapTarget(rx.listFor(t), mode), nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrNotWrappable, v)
	}
}

func (rx *Runtime) wrapTarget(tgt any, mode wrapMode) *Handle {
	cache := rx.handles[mode]
	if cache == nil {
		cache = map[any]*Handle{}
		rx.handles[mode] = cache
	}
	if h, ok := cache[tgt]; ok {
		return h
	}
	h := &Handle{rx: rx, shallow: mode.shallow, readOnly: mode.readOnly}
	switch t := tgt.(type) {
	case *record:
		h.rec = t
	case *list:
		h.lst = t
	default:
		panic("reactive: unknown wrap target")
	}
	cache[tgt] = h
	return h
}

func (h *Handle) mode() wrapMode {
	return wrapMode{shallow: h.shallow, readOnly: h.readOnly}
}

func (h *Handle) target() any {
	if h.lst != nil {
		return h.lst
	}
	return h.rec
}

// IsList reports whether the handle wraps a sequence.
func (h *Handle) IsList() bool { return h.lst != nil }

// Unwrap is the escape hatch: it returns the underlying aggregate with no
// tracking. Aggregate children that were written through handles surface as
// their promoted targets; read them through their own handles.
func (h *Handle) Unwrap() any {
	if h.lst != nil {
		return h.lst.items
	}
	return h.rec.fields
}

// track registers a read unless the handle is read-only.
func (h *Handle) track(key depKey) {
	if h.readOnly {
		return
	}
	h.rx.track(h.target(), key)
}

// denyWrite reports and swallows writes through read-only handles.
func (h *Handle) denyWrite(op, key string) bool {
	if !h.readOnly {
		return false
	}
	h.rx.violation("reactive: %s %q on read-only handle ignored", op, key)
	return true
}

// wrapValue applies deep reactivity lazily: aggregate values read through a
// deep handle come back wrapped under the same mode.
func (h *Handle) wrapValue(v any) any {
	if h.shallow {
		return v
	}
	switch v.(type) {
	case map[string]any, []any, *record, *list:
		child, err := h.rx.wrap(v, h.mode())
		if err == nil {
			return child
		}
	}
	return v
}

func (h *Handle) mustRecord(op string) *record {
	if h.rec == nil {
		panic("reactive: " + op + " on a list handle")
	}
	return h.rec
}

func (h *Handle) mustList(op string) *list {
	if h.lst == nil {
		panic("reactive: " + op + " on a record handle")
	}
	return h.lst
}

// Get reads field name, following the record's proto chain. Every record
// visited during the lookup is tracked, so a parent mutation re-runs
// readers that fell through to it.
func (h *Handle) Get(name string) any {
	rec := h.mustRecord("Get")
	h.track(namedKey(name))
	for r := rec; r != nil; r = r.proto {
		if r != rec && !h.readOnly {
			h.rx.track(r, namedKey(name))
		}
		if v, ok := r.own(name); ok {
			return h.wrapValue(v)
		}
	}
	return nil
}

// Set writes field name. The write always lands on the handle's own record
// even when the proto chain also knows the key, so a single mutation never
// notifies more than one target. Replacing a value with an identical one
// (including NaN with NaN) does not trigger.
func (h *Handle) Set(name string, v any) {
	rec := h.mustRecord("Set")
	if h.denyWrite("set", name) {
		return
	}
	old, own := rec.own(name)
	op := opSet
	if !own {
		op = opAdd
	}
	v = unwrapValue(v)
	rec.fields[name] = v
	if op == opAdd || hasChanged(old, v) {
		h.rx.trigger(rec, namedKey(name), op, v)
	}
}

// Has reports key membership, proto chain included, and tracks the key on
// every record visited.
func (h *Handle) Has(name string) bool {
	rec := h.mustRecord("Has")
	h.track(namedKey(name))
	for r := rec; r != nil; r = r.proto {
		if r != rec && !h.readOnly {
			h.rx.track(r, namedKey(name))
		}
		if _, ok := r.own(name); ok {
			return true
		}
	}
	return false
}

// Delete removes an own field. It triggers, and reports true, only when
// the key was genuinely own-present.
func (h *Handle) Delete(name string) bool {
	rec := h.mustRecord("Delete")
	if h.denyWrite("delete", name) {
		return false
	}
	if _, own := rec.own(name); !own {
		return false
	}
	delete(rec.fields, name)
	h.rx.trigger(rec, namedKey(name), opDelete, nil)
	return true
}

// Keys enumerates the aggregate: own field names in sorted order for
// records, index strings for lists. Enumeration subscribes to shape
// changes, not to individual values.
func (h *Handle) Keys() []string {
	if h.lst != nil {
		h.track(lengthKey)
		keys := make([]string, h.lst.len())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	h.track(iterateKey)
	return h.rec.ownKeys()
}

// Len reads the sequence length.
func (h *Handle) Len() int {
	lst := h.mustList("Len")
	h.track(lengthKey)
	return lst.len()
}

// SetLen resizes the sequence. Shrinking invalidates every out-of-range
// slot; pure growth notifies only length subscribers.
func (h *Handle) SetLen(n int) {
	lst := h.mustList("SetLen")
	if h.denyWrite("resize", "length") {
		return
	}
	if n < 0 {
		n = 0
	}
	if n == lst.len() {
		return
	}
	lst.setLen(n)
	h.rx.trigger(lst, lengthKey, opSet, n)
}

// At reads slot i; out-of-range reads still track the slot and return nil.
func (h *Handle) At(i int) any {
	lst := h.mustList("At")
	h.track(indexKey(i))
	v, ok := lst.at(i)
	if !ok {
		return nil
	}
	return h.wrapValue(v)
}

// SetAt writes slot i, growing with nils when i is past the end. A write at
// or past the current length is an addition and also wakes length
// subscribers.
func (h *Handle) SetAt(i int, v any) {
	lst := h.mustList("SetAt")
	if h.denyWrite("set", strconv.Itoa(i)) {
		return
	}
	if i < 0 {
		return
	}
	op := opSet
	var old any
	if i < lst.len() {
		old, _ = lst.at(i)
	} else {
		op = opAdd
	}
	v = unwrapValue(v)
	lst.setAt(i, v)
	if op == opAdd || hasChanged(old, v) {
		h.rx.trigger(lst, indexKey(i), op, v)
	}
}

// Push appends items. Like the other structural methods it suppresses
// dependency registration for its own internal work, so an effect that
// pushes never subscribes itself to the length it is changing.
func (h *Handle) Push(items ...any) int {
	lst := h.mustList("Push")
	if h.denyWrite("push", "length") {
		return lst.len()
	}
	rx := h.rx
	rx.StartBatch()
	defer rx.EndBatch()
	rx.PauseTracking()
	defer rx.ResumeTracking()
	for _, it := range items {
		i := lst.len()
		lst.items = append(lst.items, unwrapValue(it))
		rx.trigger(lst, indexKey(i), opAdd, it)
	}
	return lst.len()
}

// Pop removes and returns the last item, or nil on an empty list.
func (h *Handle) Pop() any {
	lst := h.mustList("Pop")
	if h.denyWrite("pop", "length") {
		return nil
	}
	n := lst.len()
	if n == 0 {
		return nil
	}
	rx := h.rx
	rx.StartBatch()
	defer rx.EndBatch()
	rx.PauseTracking()
	defer rx.ResumeTracking()
	old := lst.items[n-1]
	lst.items = lst.items[:n-1]
	rx.trigger(lst, lengthKey, opSet, n-1)
	return h.wrapValue(old)
}

// Shift removes and returns the first item, or nil on an empty list.
func (h *Handle) Shift() any {
	lst := h.mustList("Shift")
	if h.denyWrite("shift", "length") {
		return nil
	}
	n := lst.len()
	if n == 0 {
		return nil
	}
	rx := h.rx
	rx.StartBatch()
	defer rx.EndBatch()
	rx.PauseTracking()
	defer rx.ResumeTracking()
	old := lst.items[0]
	prev := make([]any, n)
	copy(prev, lst.items)
	copy(lst.items, lst.items[1:])
	lst.items = lst.items[:n-1]
	for i := 0; i < n-1; i++ {
		if hasChanged(prev[i], lst.items[i]) {
			rx.trigger(lst, indexKey(i), opSet, lst.items[i])
		}
	}
	rx.trigger(lst, lengthKey, opSet, n-1)
	return h.wrapValue(old)
}

// Unshift prepends items and returns the new length.
func (h *Handle) Unshift(items ...any) int {
	lst := h.mustList("Unshift")
	if h.denyWrite("unshift", "length") {
		return lst.len()
	}
	if len(items) == 0 {
		return lst.len()
	}
	rx := h.rx
	rx.StartBatch()
	defer rx.EndBatch()
	rx.PauseTracking()
	defer rx.ResumeTracking()
	oldN := lst.len()
	prev := make([]any, oldN)
	copy(prev, lst.items)
	next := make([]any, 0, oldN+len(items))
	for _, it := range items {
		next = append(next, unwrapValue(it))
	}
	next = append(next, prev...)
	lst.items = next
	for i := 0; i < oldN; i++ {
		if hasChanged(prev[i], lst.items[i]) {
			rx.trigger(lst, indexKey(i), opSet, lst.items[i])
		}
	}
	for i := oldN; i < lst.len(); i++ {
		rx.trigger(lst, indexKey(i), opAdd, lst.items[i])
	}
	return lst.len()
}

// Splice removes deleteCount items at start, inserts items in their place,
// and returns the removed items. Negative start counts from the end.
func (h *Handle) Splice(start, deleteCount int, items ...any) []any {
	lst := h.mustList("Splice")
	if h.denyWrite("splice", "length") {
		return nil
	}
	n := lst.len()
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-start {
		deleteCount = n - start
	}

	rx := h.rx
	rx.StartBatch()
	defer rx.EndBatch()
	rx.PauseTracking()
	defer rx.ResumeTracking()

	prev := make([]any, n)
	copy(prev, lst.items)
	removed := make([]any, deleteCount)
	copy(removed, lst.items[start:start+deleteCount])

	next := make([]any, 0, n-deleteCount+len(items))
	next = append(next, prev[:start]...)
	for _, it := range items {
		next = append(next, unwrapValue(it))
	}
	next = append(next, prev[start+deleteCount:]...)
	lst.items = next

	newN := lst.len()
	minN := n
	if newN < minN {
		minN = newN
	}
	for i := start; i < minN; i++ {
		if hasChanged(prev[i], lst.items[i]) {
			rx.trigger(lst, indexKey(i), opSet, lst.items[i])
		}
	}
	if newN > n {
		for i := n; i < newN; i++ {
			rx.trigger(lst, indexKey(i), opAdd, lst.items[i])
		}
	} else if newN < n {
		rx.trigger(lst, lengthKey, opSet, newN)
	}

	for i := range removed {
		removed[i] = h.wrapValue(removed[i])
	}
	return removed
}

// IndexOf searches the tracked view first, then falls back to the raw
// items, so membership tests find wrapped values they were compared
// against.
func (h *Handle) IndexOf(v any) int {
	lst := h.mustList("IndexOf")
	n := h.Len()
	for i := 0; i < n; i++ {
		if identical(h.At(i), v) {
			return i
		}
	}
	raw := unwrapValue(v)
	for i, it := range lst.items {
		if identical(it, raw) {
			return i
		}
	}
	return -1
}

// LastIndexOf is IndexOf from the end.
func (h *Handle) LastIndexOf(v any) int {
	lst := h.mustList("LastIndexOf")
	n := h.Len()
	for i := n - 1; i >= 0; i-- {
		if identical(h.At(i), v) {
			return i
		}
	}
	raw := unwrapValue(v)
	for i := len(lst.items) - 1; i >= 0; i-- {
		if identical(lst.items[i], raw) {
			return i
		}
	}
	return -1
}

// Includes reports membership with IndexOf's search semantics.
func (h *Handle) Includes(v any) bool {
	return h.IndexOf(v) >= 0
}
