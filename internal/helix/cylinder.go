package helix

// Pole is the fixed-size pool of central cylinder segments the rings are
// threaded on. Segments are created once and only ever repositioned: as the
// ball descends, the topmost segment is transferred to the bottom, keeping
// the visible pole continuous for an unbounded descent.
type Pole struct {
	ys        []float64 // Segment base positions, unordered
	segHeight float64
	lowestY   float64
}

// NewPole creates total segments spanning from aboveStart x segHeight at the
// top down to -(total - aboveStart) x segHeight, so part of the pole is
// visible above the starting ring.
func NewPole(total int, segHeight float64, aboveStart int) *Pole {
	p := &Pole{
		ys:        make([]float64, total),
		segHeight: segHeight,
	}
	for i := range p.ys {
		p.ys[i] = float64(aboveStart-i) * segHeight
		if i == total-1 {
			p.lowestY = p.ys[i]
		}
	}
	return p
}

// Len returns the fixed segment count.
func (p *Pole) Len() int {
	return len(p.ys)
}

// SegmentHeight returns the height of one pole segment.
func (p *Pole) SegmentHeight() float64 {
	return p.segHeight
}

// Top returns the highest segment base position.
func (p *Pole) Top() float64 {
	top := p.ys[0]
	for _, y := range p.ys[1:] {
		if y > top {
			top = y
		}
	}
	return top
}

// Bottom returns the lowest segment base position.
func (p *Pole) Bottom() float64 {
	return p.lowestY
}

// TransferTopToBottom moves the topmost segment below the current lowest
// one. A linear scan is fine here, the pool holds tens of segments.
func (p *Pole) TransferTopToBottom() {
	topIdx := 0
	for i := 1; i < len(p.ys); i++ {
		if p.ys[i] > p.ys[topIdx] {
			topIdx = i
		}
	}
	p.ys[topIdx] = p.lowestY - p.segHeight
	p.lowestY = p.ys[topIdx]
}

// Segments returns the segment base positions, unordered.
func (p *Pole) Segments() []float64 {
	return p.ys
}
