package terrain

// HeightMap is a row-major grid of samples.
type HeightMap struct {
	Width  int
	Height int
	Data   []float64
}

func NewHeightMap(width, height int) *HeightMap {
	return &HeightMap{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

func (hm *HeightMap) At(x, y int) float64 {
	return hm.Data[y*hm.Width+x]
}

func (hm *HeightMap) Set(x, y int, v float64) {
	hm.Data[y*hm.Width+x] = v
}

// Range returns the smallest and largest sample. An empty map yields (0, 0).
func (hm *HeightMap) Range() (lo, hi float64) {
	if len(hm.Data) == 0 {
		return 0, 0
	}
	lo, hi = hm.Data[0], hm.Data[0]
	for _, v := range hm.Data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Normalize rescales the samples linearly onto [0, 1]. A flat map becomes all
// zeros.
func (hm *HeightMap) Normalize() {
	lo, hi := hm.Range()
	span := hi - lo
	if span == 0 {
		if len(hm.Data) > 0 {
			logger().Warn("normalizing flat height map", "value", lo)
		}
		clear(hm.Data)
		return
	}
	for i, v := range hm.Data {
		hm.Data[i] = (v - lo) / span
	}
}
