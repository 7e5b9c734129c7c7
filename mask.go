package blit

// MaskStack attenuates rows of coverage values with externally managed
// per-pixel masks. The compositor consults it after format decoding, on
// top of chroma-key and alpha-byte results.
type MaskStack interface {
	// Count returns the number of active masks. Zero keeps the
	// compositor on uniform-coverage shortcuts.
	Count() int

	// Apply attenuates one row of coverage in place. The row starts at
	// absolute device coordinates (absX, absY) and spans width pixels.
	Apply(alpha []Opacity, absX, absY, width int) MaskRes
}

// Mask is one entry of a MaskList.
type Mask interface {
	Apply(alpha []Opacity, absX, absY, width int) MaskRes
}

// MaskList is a MaskStack backed by a slice of masks, applied in order.
// The zero value is an empty, usable stack.
type MaskList struct {
	masks []Mask
}

// Add pushes a mask onto the stack.
func (l *MaskList) Add(m Mask) { l.masks = append(l.masks, m) }

// Remove drops a previously added mask.
func (l *MaskList) Remove(m Mask) {
	for i, cur := range l.masks {
		if cur == m {
			l.masks = append(l.masks[:i], l.masks[i+1:]...)
			return
		}
	}
}

// Count implements the MaskStack interface.
func (l *MaskList) Count() int { return len(l.masks) }

// Apply implements the MaskStack interface. The combined verdict is the
// strongest of the individual ones: any FullTransp wins, otherwise any
// Changed wins.
func (l *MaskList) Apply(alpha []Opacity, absX, absY, width int) MaskRes {
	res := MaskResFullCover
	for _, m := range l.masks {
		switch m.Apply(alpha, absX, absY, width) {
		case MaskResFullTransp:
			return MaskResFullTransp
		case MaskResChanged:
			res = MaskResChanged
		}
	}
	return res
}

// RectMask confines drawing to a rectangle in absolute device
// coordinates: coverage outside the rectangle drops to zero.
type RectMask struct {
	Rect Area
}

// Apply implements the Mask interface.
func (m *RectMask) Apply(alpha []Opacity, absX, absY, width int) MaskRes {
	if absY < m.Rect.Y1 || absY > m.Rect.Y2 ||
		absX+width-1 < m.Rect.X1 || absX > m.Rect.X2 {
		return MaskResFullTransp
	}
	if absX >= m.Rect.X1 && absX+width-1 <= m.Rect.X2 {
		return MaskResFullCover
	}
	for i := 0; i < width; i++ {
		if x := absX + i; x < m.Rect.X1 || x > m.Rect.X2 {
			alpha[i] = OpaTransp
		}
	}
	return MaskResChanged
}

// BufMask modulates coverage with an alpha plane positioned at absolute
// device coordinates. Plane values multiply into the row; pixels outside
// the plane become transparent.
type BufMask struct {
	Rect Area   // device area the plane covers
	Data []byte // row-major coverage, Rect.W()*Rect.H() bytes
}

// NewBufMask wraps an alpha plane covering the given device area. The
// data length must match the area size.
func NewBufMask(rect Area, data []byte) *BufMask {
	return &BufMask{Rect: rect, Data: data}
}

// Apply implements the Mask interface.
func (m *BufMask) Apply(alpha []Opacity, absX, absY, width int) MaskRes {
	if absY < m.Rect.Y1 || absY > m.Rect.Y2 {
		return MaskResFullTransp
	}
	row := (absY - m.Rect.Y1) * m.Rect.W()
	allTransp := true
	for i := 0; i < width; i++ {
		x := absX + i
		if x < m.Rect.X1 || x > m.Rect.X2 {
			alpha[i] = OpaTransp
			continue
		}
		v := m.Data[row+x-m.Rect.X1]
		a := Opacity(uint16(alpha[i]) * uint16(v) >> 8)
		alpha[i] = a
		if a >= OpaMin {
			allTransp = false
		}
	}
	if allTransp {
		return MaskResFullTransp
	}
	return MaskResChanged
}
