package editor

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Watcher closes open inputs when a pointer press lands outside the active
// one. Only a single input is tracked, however many fields are open.
type Watcher struct {
	ctrl    *Controller
	input   Rect
	tracked bool
}

// NewWatcher binds a watcher to ctrl.
func NewWatcher(ctrl *Controller) *Watcher {
	return &Watcher{ctrl: ctrl}
}

// Track records where the active input is drawn.
func (w *Watcher) Track(r Rect) {
	w.input = r
	w.tracked = !r.Empty()
}

// Untrack forgets the active input.
func (w *Watcher) Untrack() {
	w.input = Rect{}
	w.tracked = false
}

// Tracked returns the tracked input region.
func (w *Watcher) Tracked() (Rect, bool) {
	return w.input, w.tracked
}

// Armed reports whether pointer presses are being watched: true exactly while
// some field is in edit mode.
func (w *Watcher) Armed() bool {
	return w.ctrl != nil && w.ctrl.AnyEditing()
}

// PointerDown handles a press at (x, y). It closes every open field and
// returns true when armed and the press is outside the tracked input.
func (w *Watcher) PointerDown(x, y int) bool {
	if !w.Armed() {
		return false
	}
	if w.tracked && w.input.Contains(x, y) {
		return false
	}
	w.ctrl.CloseAll()
	w.Untrack()
	return true
}
