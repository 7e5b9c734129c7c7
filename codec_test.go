package blit

import "testing"

func TestBitPacking(t *testing.T) {
	// Rows pack MSB first: pixel 0 occupies the highest bits of byte 0.
	row := make([]byte, 3)

	setBitAt(row, 0, 1, 1)
	if row[0] != 0x80 {
		t.Errorf("1bpp pixel 0: row[0] = %#02x, want 0x80", row[0])
	}
	setBitAt(row, 7, 1, 1)
	if row[0] != 0x81 {
		t.Errorf("1bpp pixel 7: row[0] = %#02x, want 0x81", row[0])
	}
	setBitAt(row, 8, 1, 1)
	if row[1] != 0x80 {
		t.Errorf("1bpp pixel 8: row[1] = %#02x, want 0x80", row[1])
	}

	for _, x := range []int{0, 7, 8} {
		if bitAt(row, x, 1) != 1 {
			t.Errorf("bitAt(%d) = 0, want 1", x)
		}
	}
	if bitAt(row, 1, 1) != 0 {
		t.Error("bitAt(1) = 1, want 0")
	}
}

func TestBitPackingMultiBit(t *testing.T) {
	tests := []struct {
		name string
		bpp  uint8
		x    int
		val  uint8
		want []byte
	}{
		{"2bpp pixel 0", 2, 0, 3, []byte{0xC0, 0}},
		{"2bpp pixel 3", 2, 3, 2, []byte{0x02, 0}},
		{"2bpp pixel 4", 2, 4, 1, []byte{0, 0x40}},
		{"4bpp pixel 0", 4, 0, 0xA, []byte{0xA0, 0}},
		{"4bpp pixel 1", 4, 1, 0x5, []byte{0x05, 0}},
		{"4bpp pixel 2", 4, 2, 0xF, []byte{0, 0xF0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := make([]byte, 2)
			setBitAt(row, tt.x, tt.bpp, tt.val)
			if row[0] != tt.want[0] || row[1] != tt.want[1] {
				t.Fatalf("row = %#02x %#02x, want %#02x %#02x",
					row[0], row[1], tt.want[0], tt.want[1])
			}
			if got := bitAt(row, tt.x, tt.bpp); got != tt.val {
				t.Errorf("bitAt = %d, want %d", got, tt.val)
			}
		})
	}
}

func TestAlphaTables(t *testing.T) {
	if alpha2Map != [4]Opacity{0, 85, 170, 255} {
		t.Errorf("alpha2Map = %v", alpha2Map)
	}
	want4 := [16]Opacity{
		0, 17, 34, 51, 68, 85, 102, 119,
		136, 153, 170, 187, 204, 221, 238, 255,
	}
	if alpha4Map != want4 {
		t.Errorf("alpha4Map = %v", alpha4Map)
	}
}

func TestCodecForUnknown(t *testing.T) {
	if _, ok := codecFor(ColorFormat(200)).(rawCodec); !ok {
		t.Error("out-of-range format did not map to the raw codec")
	}
}
