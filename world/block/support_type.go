package block

import "fmt"

// SupportType describes how strongly a face of a block supports whatever rests against it.
type SupportType uint8

const (
	// SupportNone means the face offers no support at all.
	SupportNone SupportType = iota
	// SupportCenter means only the centre of the face can carry a block, like the top of a fence post.
	SupportCenter
	// SupportEdge means the rim of the face can carry a block, like the top of a cauldron.
	SupportEdge
	// SupportFull means the whole face is solid.
	SupportFull
)

// HasCenterSupport returns true if the centre of the face can carry a block.
func (s SupportType) HasCenterSupport() bool {
	return s == SupportCenter || s == SupportEdge || s == SupportFull
}

// HasEdgeSupport returns true if the rim of the face can carry a block.
func (s SupportType) HasEdgeSupport() bool {
	return s == SupportEdge || s == SupportFull
}

func (s SupportType) String() string {
	switch s {
	case SupportNone:
		return "none"
	case SupportCenter:
		return "center"
	case SupportEdge:
		return "edge"
	case SupportFull:
		return "full"
	}
	return fmt.Sprintf("SupportType(%d)", uint8(s))
}
