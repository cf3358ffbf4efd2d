package raycast

// Side identifies which grid-line family a ray crossed when it hit a wall,
// named for the axis direction the ray was traveling at the crossing:
// eastbound rays cross vertical lines as Right, southbound rays cross
// horizontal lines as Down, and so on.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

// Vertical reports whether the crossed line belongs to the vertical family
// (a Left/Right crossing). It decides which axis the texture offset of a
// hit point varies along.
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}
