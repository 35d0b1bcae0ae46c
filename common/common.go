package common

// Logical arena size in pixels. The window scales this up; the simulation,
// renderer and UI all work in these units.
const (
	BaseWidth  = 540
	BaseHeight = 960
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
