package reach

// stateSet records expanded states.
//
// Search dequeues states in non-decreasing Steps order (FIFO, every push is
// one step deeper than its parent), so a duplicate can only ever be another
// state at the depth currently being dequeued. Both implementations keep just
// that depth's layer and drop it when the depth advances; the observable
// behavior is that of a set keyed on (x, y, steps).
type stateSet interface {
	// add inserts s and reports whether it was absent.
	add(s State) bool
	// len returns the number of distinct states ever added.
	len() int
}

// denseStates is a per-depth bitmap for bounded searches.
type denseStates struct {
	width int
	depth int
	layer []bool
	n     int
}

func newDenseStates(width, height int) *denseStates {
	return &denseStates{
		width: width,
		depth: -1,
		layer: make([]bool, width*height),
	}
}

func (d *denseStates) add(s State) bool {
	if s.Steps != d.depth {
		clear(d.layer)
		d.depth = s.Steps
	}
	i := s.Y*d.width + s.X
	if d.layer[i] {
		return false
	}
	d.layer[i] = true
	d.n++
	return true
}

func (d *denseStates) len() int { return d.n }

// sparseStates is a per-depth position set for wrapping searches,
// where positions are unbounded.
type sparseStates struct {
	depth int
	layer map[Position]struct{}
	n     int
}

func newSparseStates(hint int) *sparseStates {
	return &sparseStates{
		depth: -1,
		layer: make(map[Position]struct{}, hint),
	}
}

func (s *sparseStates) add(st State) bool {
	if st.Steps != s.depth {
		clear(s.layer)
		s.depth = st.Steps
	}
	if _, ok := s.layer[st.Position]; ok {
		return false
	}
	s.layer[st.Position] = struct{}{}
	s.n++
	return true
}

func (s *sparseStates) len() int { return s.n }
