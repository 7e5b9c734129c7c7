package blit

import "testing"

func coverRow(n int) []Opacity {
	row := make([]Opacity, n)
	for i := range row {
		row[i] = OpaCover
	}
	return row
}

func TestRectMask(t *testing.T) {
	m := &RectMask{Rect: Area{2, 2, 5, 5}}

	t.Run("row outside", func(t *testing.T) {
		row := coverRow(8)
		if res := m.Apply(row, 0, 1, 8); res != MaskResFullTransp {
			t.Errorf("res = %d, want full transp", res)
		}
	})

	t.Run("row fully inside", func(t *testing.T) {
		row := coverRow(3)
		if res := m.Apply(row, 2, 3, 3); res != MaskResFullCover {
			t.Errorf("res = %d, want full cover", res)
		}
		for i, a := range row {
			if a != OpaCover {
				t.Errorf("alpha[%d] = %d, want untouched", i, a)
			}
		}
	})

	t.Run("row straddling", func(t *testing.T) {
		row := coverRow(8)
		if res := m.Apply(row, 0, 3, 8); res != MaskResChanged {
			t.Errorf("res = %d, want changed", res)
		}
		want := []Opacity{0, 0, OpaCover, OpaCover, OpaCover, OpaCover, 0, 0}
		for i, a := range row {
			if a != want[i] {
				t.Errorf("alpha[%d] = %d, want %d", i, a, want[i])
			}
		}
	})

	t.Run("row left of rect", func(t *testing.T) {
		row := coverRow(2)
		if res := m.Apply(row, 0, 3, 2); res != MaskResFullTransp {
			t.Errorf("res = %d, want full transp", res)
		}
	})
}

func TestBufMask(t *testing.T) {
	// A 4x2 plane at (10, 10): left half opaque, right half faint.
	rect := MakeArea(10, 10, 4, 2)
	data := []byte{
		255, 255, 1, 1,
		255, 255, 1, 1,
	}
	m := NewBufMask(rect, data)

	t.Run("multiplies coverage", func(t *testing.T) {
		row := []Opacity{OpaCover, 128, OpaCover, OpaCover}
		if res := m.Apply(row, 10, 10, 4); res != MaskResChanged {
			t.Errorf("res = %d, want changed", res)
		}
		if row[0] != 254 { // 255*255>>8
			t.Errorf("alpha[0] = %d, want 254", row[0])
		}
		if row[1] != 127 { // 128*255>>8
			t.Errorf("alpha[1] = %d, want 127", row[1])
		}
		if row[2] >= OpaMin {
			t.Errorf("alpha[2] = %d, want below minimum", row[2])
		}
	})

	t.Run("row outside plane", func(t *testing.T) {
		row := coverRow(4)
		if res := m.Apply(row, 10, 12, 4); res != MaskResFullTransp {
			t.Errorf("res = %d, want full transp", res)
		}
	})

	t.Run("all faint reports full transp", func(t *testing.T) {
		row := coverRow(2)
		if res := m.Apply(row, 12, 10, 2); res != MaskResFullTransp {
			t.Errorf("res = %d, want full transp", res)
		}
	})

	t.Run("pixels off the plane edge go transparent", func(t *testing.T) {
		row := coverRow(6)
		if res := m.Apply(row, 9, 10, 6); res != MaskResChanged {
			t.Errorf("res = %d, want changed", res)
		}
		if row[0] != OpaTransp {
			t.Errorf("alpha[0] = %d, want transparent", row[0])
		}
	})
}

func TestMaskList(t *testing.T) {
	inner := &RectMask{Rect: Area{0, 0, 3, 3}}
	outer := &RectMask{Rect: Area{0, 0, 9, 9}}

	var l MaskList
	if l.Count() != 0 {
		t.Fatalf("empty list Count = %d", l.Count())
	}
	l.Add(outer)
	l.Add(inner)
	if l.Count() != 2 {
		t.Fatalf("Count = %d, want 2", l.Count())
	}

	t.Run("full transp wins", func(t *testing.T) {
		row := coverRow(4)
		// Row 5 is inside outer but outside inner.
		if res := l.Apply(row, 0, 5, 4); res != MaskResFullTransp {
			t.Errorf("res = %d, want full transp", res)
		}
	})

	t.Run("changed wins over cover", func(t *testing.T) {
		row := coverRow(6)
		if res := l.Apply(row, 0, 2, 6); res != MaskResChanged {
			t.Errorf("res = %d, want changed", res)
		}
		if row[4] != OpaTransp || row[0] != OpaCover {
			t.Errorf("row = %v", row)
		}
	})

	t.Run("remove restores cover", func(t *testing.T) {
		l.Remove(inner)
		if l.Count() != 1 {
			t.Fatalf("Count = %d, want 1", l.Count())
		}
		row := coverRow(4)
		if res := l.Apply(row, 0, 5, 4); res != MaskResFullCover {
			t.Errorf("res = %d, want full cover", res)
		}
	})
}
