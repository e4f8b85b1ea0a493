package loom

// Flow selects which axis is "main" (sequential) versus "cross"
// (perpendicular) for the list layout helpers (spec §3, glossary).
type Flow uint8

const (
	FlowVertical Flow = iota
	FlowHorizontal
)

// ResolvedSize is an integer (w, h) pair chosen by an element or a layout
// helper.
type ResolvedSize struct {
	W, H int
}

// ToFlow projects a resolved size onto (cross, main) for the given flow
// direction: Vertical treats width as cross and height as main; Horizontal
// is the reverse.
func (s ResolvedSize) ToFlow(flow Flow) (cross, main int) {
	if flow == FlowHorizontal {
		return s.H, s.W
	}
	return s.W, s.H
}

// FromFlow is the inverse of ToFlow.
func FromFlow(flow Flow, cross, main int) ResolvedSize {
	if flow == FlowHorizontal {
		return ResolvedSize{W: main, H: cross}
	}
	return ResolvedSize{W: cross, H: main}
}

// BoxSizeKind discriminates the three box-size variants.
type BoxSizeKind uint8

const (
	BoxSizeHidden BoxSizeKind = iota
	BoxSizeAuto
	BoxSizeFixed
)

// BoxSize is the sizing mode requested of an element during resize (spec
// §3). Hidden and Auto carry no payload; Fixed carries the requested (w, h).
type BoxSize struct {
	Kind BoxSizeKind
	W, H int
}

// Hidden constructs a Hidden box-size request.
func Hidden() BoxSize { return BoxSize{Kind: BoxSizeHidden} }

// Auto constructs an Auto box-size request.
func Auto() BoxSize { return BoxSize{Kind: BoxSizeAuto} }

// Fixed constructs a Fixed{w, h} box-size request.
func Fixed(w, h int) BoxSize { return BoxSize{Kind: BoxSizeFixed, W: w, H: h} }

// lastResolvedSizeKind discriminates the three last-resolved-size variants
// (spec §3): they mirror BoxSizeKind but additionally remember the
// resolution outcome for memoization.
type lastResolvedSizeKind uint8

const (
	lastSizeHidden lastResolvedSizeKind = iota
	lastSizeAuto
	lastSizeFixed
)

// lastResolvedSize is the memoized outcome of the most recent resize call
// for a node. A nil *lastResolvedSize means "never resized, or invalidated
// since" (spec §3: "no last-resolved-size").
type lastResolvedSize struct {
	kind     lastResolvedSizeKind
	w, h     int           // requested dims, valid when kind == lastSizeFixed
	resolved *ResolvedSize // the outcome; nil means the element resolved None, and is always nil for lastSizeHidden
}

// matches reports whether a fresh box-size request would hit the cache
// described in spec §4.3 step 1: same variant, and for Fixed, same
// requested dimensions.
func (l *lastResolvedSize) matches(box BoxSize) bool {
	if l == nil {
		return false
	}
	switch box.Kind {
	case BoxSizeHidden:
		return l.kind == lastSizeHidden
	case BoxSizeAuto:
		return l.kind == lastSizeAuto
	case BoxSizeFixed:
		return l.kind == lastSizeFixed && l.w == box.W && l.h == box.H
	default:
		return false
	}
}

// newLastResolvedSize builds the tagged value stored after a resize call
// (spec §4.3 step 3), labelled by the box-size variant that produced it.
func newLastResolvedSize(box BoxSize, resolved *ResolvedSize) *lastResolvedSize {
	switch box.Kind {
	case BoxSizeHidden:
		return &lastResolvedSize{kind: lastSizeHidden}
	case BoxSizeFixed:
		return &lastResolvedSize{kind: lastSizeFixed, w: box.W, h: box.H, resolved: resolved}
	default: // BoxSizeAuto
		return &lastResolvedSize{kind: lastSizeAuto, resolved: resolved}
	}
}

// toBoxSize projects a last-resolved-size back into the box-size that
// produced it, used by the update pass (spec §4.6 step 2) to re-derive the
// request an element should see when ticked. A nil receiver (no
// last-resolved-size yet) projects to Hidden.
func (l *lastResolvedSize) toBoxSize() BoxSize {
	if l == nil {
		return Hidden()
	}
	switch l.kind {
	case lastSizeFixed:
		return Fixed(l.w, l.h)
	case lastSizeAuto:
		return Auto()
	default:
		return Hidden()
	}
}
