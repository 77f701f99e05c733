package block

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// FacesAroundAxis returns the four faces perpendicular to the axis passed. For cube.Y these are the four
// horizontal faces.
func FacesAroundAxis(axis cube.Axis) []cube.Face {
	faces := make([]cube.Face, 0, 4)
	for _, f := range cube.Faces() {
		if f.Axis() != axis {
			faces = append(faces, f)
		}
	}
	return faces
}

// FaceByName parses the name of a face as returned by cube.Face.String().
func FaceByName(name string) (cube.Face, bool) {
	for _, f := range cube.Faces() {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}

// FaceSet is a set of faces.
type FaceSet uint8

// Add returns the set with face added.
func (s FaceSet) Add(face cube.Face) FaceSet {
	return s | 1<<face
}

// Remove returns the set without face.
func (s FaceSet) Remove(face cube.Face) FaceSet {
	return s &^ (1 << face)
}

// Has returns true if face is in the set.
func (s FaceSet) Has(face cube.Face) bool {
	return s&(1<<face) != 0
}

// Len returns the number of faces in the set.
func (s FaceSet) Len() (n int) {
	for _, f := range cube.Faces() {
		if s.Has(f) {
			n++
		}
	}
	return
}

// Faces returns the faces in the set in cube.Faces() order.
func (s FaceSet) Faces() []cube.Face {
	faces := make([]cube.Face, 0, 6)
	for _, f := range cube.Faces() {
		if s.Has(f) {
			faces = append(faces, f)
		}
	}
	return faces
}
