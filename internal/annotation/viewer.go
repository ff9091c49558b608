package annotation

import (
	"math"
	"sync"

	"github.com/google/uuid"
)

// Zoom limits, in percent.
const (
	ZoomDefault = 100
	ZoomMin     = 25
	ZoomMax     = 300
	ZoomStep    = 25
	RotateStep  = 90
)

// State is the viewer's gesture state.
type State int

const (
	StateIdle State = iota
	StatePanning
	StateSelecting
)

func (s State) String() string {
	switch s {
	case StatePanning:
		return "panning"
	case StateSelecting:
		return "selecting"
	default:
		return "idle"
	}
}

// Viewer is one document viewer session: the active tool, the single pointer
// gesture in progress, the view transform and the annotations drawn so far.
//
// Pointer positions passed to Begin and Update are in screen space relative to
// the viewport. The view maps content to screen by scaling with the zoom,
// turning clockwise about the content origin by the rotation and then
// shifting by the pan offset. Selections are stored in content space with
// that transform undone, so annotations keep their coordinates when the view
// changes.
type Viewer struct {
	mu sync.Mutex

	tool        Tool
	state       State
	pendingText string

	// gesture
	origin      Point // screen position at pointer-down
	panAtOrigin Point
	start, end  Point // selection corners in content space

	zoom     int
	rotation int
	pan      Point

	annotations *Collection
	newID       func() string
}

// NewViewer returns an idle viewer with the move tool at 100% zoom.
func NewViewer() *Viewer {
	return &Viewer{
		tool:        ToolMove,
		zoom:        ZoomDefault,
		annotations: NewCollection(),
		newID:       uuid.NewString,
	}
}

// Annotations returns the viewer's annotation collection.
func (v *Viewer) Annotations() *Collection {
	return v.annotations
}

// SetTool switches the active tool. A gesture in progress is cancelled
// without being committed.
func (v *Viewer) SetTool(t Tool) error {
	if _, err := ParseTool(string(t)); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tool = t
	v.state = StateIdle
	return nil
}

// Begin starts a gesture with tool at p. Selection tools start a rubber-band
// selection, the move tool starts a pan. A gesture already in progress is
// cancelled first.
func (v *Viewer) Begin(t Tool, p Point) error {
	if _, err := ParseTool(string(t)); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tool = t
	v.origin = p
	if _, selecting := t.Kind(); selecting {
		v.state = StateSelecting
		v.start = v.toContent(p)
		v.end = v.start
		return nil
	}
	v.state = StatePanning
	v.panAtOrigin = v.pan
	return nil
}

// PointerDown begins a gesture with the active tool.
func (v *Viewer) PointerDown(p Point) error {
	return v.Begin(v.Tool(), p)
}

// Update extends the selection or moves the pan offset. It is a no-op when
// no gesture is active.
func (v *Viewer) Update(p Point) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch v.state {
	case StateSelecting:
		v.end = v.toContent(p)
	case StatePanning:
		v.pan = Point{
			X: v.panAtOrigin.X + p.X - v.origin.X,
			Y: v.panAtOrigin.Y + p.Y - v.origin.Y,
		}
	}
}

// Commit ends the active gesture. A selection whose on-screen width and
// height both exceed MinSelectionSize becomes a new annotation, which is
// returned; anything smaller is discarded. Comments carry the pending text.
func (v *Viewer) Commit() (Annotation, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	state := v.state
	v.state = StateIdle
	if state != StateSelecting {
		return Annotation{}, false
	}

	r := v.selection()
	scale := v.scale()
	if r.Width*scale <= MinSelectionSize || r.Height*scale <= MinSelectionSize {
		return Annotation{}, false
	}
	kind, _ := v.tool.Kind()
	a := Annotation{
		ID:     v.newID(),
		Kind:   kind,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Color:  colorFor(kind),
	}
	if kind == KindComment {
		a.Text = v.pendingText
	}
	v.annotations.Add(a)
	return a, true
}

// Cancel abandons the active gesture.
func (v *Viewer) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateIdle
}

// Remove deletes an annotation. Unknown ids are ignored.
func (v *Viewer) Remove(id string) bool {
	return v.annotations.Remove(id)
}

// EditText updates a comment's text in place. Highlights are left unchanged.
func (v *Viewer) EditText(id, text string) bool {
	return v.annotations.EditText(id, text)
}

// SetPendingText sets the text attached to the next comment.
func (v *Viewer) SetPendingText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingText = text
}

// ZoomIn raises the zoom by one step.
func (v *Viewer) ZoomIn() int {
	return v.SetZoom(v.Zoom() + ZoomStep)
}

// ZoomOut lowers the zoom by one step.
func (v *Viewer) ZoomOut() int {
	return v.SetZoom(v.Zoom() - ZoomStep)
}

// SetZoom sets the zoom percentage clamped to [ZoomMin, ZoomMax] and returns
// the applied value. A selection in progress is cancelled when the zoom
// changes, since its anchor was mapped at the old scale.
func (v *Viewer) SetZoom(percent int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	zoom := min(max(percent, ZoomMin), ZoomMax)
	if zoom != v.zoom {
		v.cancelSelection()
	}
	v.zoom = zoom
	return v.zoom
}

// Rotate turns the view a quarter clockwise and returns the new angle. A
// selection in progress is cancelled.
func (v *Viewer) Rotate() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelSelection()
	v.rotation = (v.rotation + RotateStep) % 360
	return v.rotation
}

func (v *Viewer) cancelSelection() {
	if v.state == StateSelecting {
		v.state = StateIdle
	}
}

func (v *Viewer) Tool() Tool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tool
}

func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Viewer) Zoom() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom
}

// ScreenRect maps a stored annotation onto the screen for the current view.
func (v *Viewer) ScreenRect(a Annotation) Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.scale()
	// Quarter turns keep rectangles axis-aligned, so opposite corners suffice.
	p1 := rotate(Point{X: a.X * s, Y: a.Y * s}, v.rotation)
	p2 := rotate(Point{X: (a.X + a.Width) * s, Y: (a.Y + a.Height) * s}, v.rotation)
	return Rect{
		X:      math.Min(p1.X, p2.X) + v.pan.X,
		Y:      math.Min(p1.Y, p2.Y) + v.pan.Y,
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Snapshot is a consistent view of the viewer for rendering.
type Snapshot struct {
	Tool        Tool         `json:"tool"`
	State       string       `json:"state"`
	Zoom        int          `json:"zoom"`
	Rotation    int          `json:"rotation"`
	Pan         Point        `json:"pan"`
	PendingText string       `json:"pending_text"`
	Selection   *Rect        `json:"selection,omitempty"`
	Version     uint64       `json:"version"`
	Annotations []Annotation `json:"annotations"`
}

// Snapshot captures the current view state and annotations.
func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	items, version := v.annotations.List()
	s := Snapshot{
		Tool:        v.tool,
		State:       v.state.String(),
		Zoom:        v.zoom,
		Rotation:    v.rotation,
		Pan:         v.pan,
		PendingText: v.pendingText,
		Version:     version,
		Annotations: items,
	}
	if v.state == StateSelecting {
		r := v.selection()
		s.Selection = &r
	}
	return s
}

func (v *Viewer) scale() float64 {
	return float64(v.zoom) / 100
}

func (v *Viewer) toContent(p Point) Point {
	s := v.scale()
	return rotate(Point{X: (p.X - v.pan.X) / s, Y: (p.Y - v.pan.Y) / s}, 360-v.rotation)
}

// rotate turns p clockwise on screen (y pointing down) by deg, a multiple of 90.
func rotate(p Point, deg int) Point {
	switch (deg%360 + 360) % 360 {
	case 90:
		return Point{X: -p.Y, Y: p.X}
	case 180:
		return Point{X: -p.X, Y: -p.Y}
	case 270:
		return Point{X: p.Y, Y: -p.X}
	default:
		return p
	}
}

func (v *Viewer) selection() Rect {
	return Rect{
		X:      math.Min(v.start.X, v.end.X),
		Y:      math.Min(v.start.Y, v.end.Y),
		Width:  math.Abs(v.end.X - v.start.X),
		Height: math.Abs(v.end.Y - v.start.Y),
	}
}
