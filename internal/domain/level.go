package domain

// Level is the assembled output of one conversion: grid dimensions, the
// ranked wall list, and the categorical markers found during scanning.
// Walls are ordered by geometric length descending; checkpoints keep their
// row-major discovery order. Built exactly once per run, read-only after.
type Level struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Walls       []Wall  `json:"walls"`
	Start       Point   `json:"start"`
	End         Point   `json:"end"`
	Checkpoints []Point `json:"checkpoints"`
}

// Markers collects the non-wall categorical cells found by the row scan.
// When the input holds several start or end pixels, the last one in
// row-major order wins.
type Markers struct {
	Start       Point
	End         Point
	Checkpoints []Point
}
