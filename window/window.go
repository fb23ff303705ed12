package window

// Window is a fixed-capacity FIFO ring of *Instance, ordered oldest to
// newest by DynamicIndex (spec §4.4). Its invariants: dynamic indices
// stored are strictly increasing and contiguous, and the instance at
// logical position k has DynamicIndex == first's DynamicIndex + k.
type Window struct {
	buf   []*Instance
	first int // ring index of the oldest element
	count int
}

// New constructs an empty Window with the given capacity (the ROB size).
func New(capacity int) *Window {
	return &Window{buf: make([]*Instance, capacity)}
}

// Len returns the number of in-flight instances.
func (w *Window) Len() int { return w.count }

// Cap returns the window's fixed capacity.
func (w *Window) Cap() int { return len(w.buf) }

// IsFull reports whether the window has reached capacity.
func (w *Window) IsFull() bool { return w.count == len(w.buf) }

// IsEmpty reports whether the window holds no instances.
func (w *Window) IsEmpty() bool { return w.count == 0 }

// Push appends inst as the newest instance. It returns false (silently,
// per spec §4.4) if the window is already full; callers that rely on
// Push succeeding should check IsFull first — a Push failure when the
// caller believed there was room is the WindowOverflow invariant
// violation of spec §7.
func (w *Window) Push(inst *Instance) bool {
	if w.IsFull() {
		return false
	}
	pos := (w.first + w.count) % len(w.buf)
	w.buf[pos] = inst
	w.count++
	return true
}

// Pop removes the n oldest instances. It stops early (silently) if the
// window empties before n removals, per spec §4.4.
func (w *Window) Pop(n int) {
	for i := 0; i < n; i++ {
		if w.count == 0 {
			return
		}
		w.buf[w.first] = nil
		w.first = (w.first + 1) % len(w.buf)
		w.count--
	}
}

// At returns the instance at logical position i (0 == oldest), panicking
// if i is out of [0, Len()) — mirroring the reference implementation's
// IndexError for an invalid logical position.
func (w *Window) At(i int) *Instance {
	if i < 0 || i >= w.count {
		panic("window: index out of range")
	}
	return w.buf[(w.first+i)%len(w.buf)]
}

// Get returns the instance whose DynamicIndex equals idx, or nil if idx
// lies outside [oldest.DynamicIndex, newest.DynamicIndex] — meaning it has
// either not yet been dispatched or has already retired out of the window
// (spec §4.4, and §7 ConsumerBeforeProducer: a producer that has "fallen
// out of the window" is considered done).
func (w *Window) Get(idx int) *Instance {
	if w.count == 0 {
		return nil
	}
	first := w.At(0).DynamicIndex
	last := w.At(w.count - 1).DynamicIndex
	if idx < first || idx > last {
		return nil
	}
	return w.buf[(w.first+idx-first)%len(w.buf)]
}

// Each calls fn for every in-flight instance, oldest to newest — the
// fixed iteration order spec §5 requires for deterministic per-cycle
// passes.
func (w *Window) Each(fn func(i int, inst *Instance)) {
	for i := 0; i < w.count; i++ {
		fn(i, w.buf[(w.first+i)%len(w.buf)])
	}
}
