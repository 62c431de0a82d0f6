package utils

import "testing"

func countOpaque(size int, pixel func(x, y int) uint8) int {
	n := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if pixel(x, y) > 0 {
				n++
			}
		}
	}
	return n
}

// TestHeartMask 实心心形比轮廓多，且中心有像素
func TestHeartMask(t *testing.T) {
	const size = 64
	filled := HeartMask(size, true)
	outline := HeartMask(size, false)

	filledCount := countOpaque(size, func(x, y int) uint8 { return filled.RGBAAt(x, y).A })
	outlineCount := countOpaque(size, func(x, y int) uint8 { return outline.RGBAAt(x, y).A })

	if filledCount == 0 || outlineCount == 0 {
		t.Fatalf("masks should not be empty: filled=%d outline=%d", filledCount, outlineCount)
	}
	if outlineCount >= filledCount {
		t.Errorf("outline (%d) should cover fewer pixels than filled (%d)", outlineCount, filledCount)
	}
	if filled.RGBAAt(size/2, size/2).A == 0 {
		t.Error("filled heart should cover its center")
	}
	if outline.RGBAAt(size/2, size/2).A != 0 {
		t.Error("outline heart should be hollow in the center")
	}
	if filled.RGBAAt(0, size-1).A != 0 {
		t.Error("bottom-left corner should be empty")
	}
}

// TestHeartMaskSymmetric 心形左右对称
func TestHeartMaskSymmetric(t *testing.T) {
	const size = 40
	m := HeartMask(size, true)
	for y := 0; y < size; y++ {
		for x := 0; x < size/2; x++ {
			if m.RGBAAt(x, y).A != m.RGBAAt(size-1-x, y).A {
				t.Fatalf("asymmetric at (%d, %d)", x, y)
			}
		}
	}
}

// TestFlowerMask 花心留空，花瓣有像素
func TestFlowerMask(t *testing.T) {
	const size = 64
	m := FlowerMask(size)
	if m.RGBAAt(size/2, size/2).A != 0 {
		t.Error("flower center should be empty")
	}
	count := countOpaque(size, func(x, y int) uint8 { return m.RGBAAt(x, y).A })
	if count == 0 {
		t.Error("flower should have petals")
	}
}

// TestMasksZeroSize 边长为 0 时返回空图片
func TestMasksZeroSize(t *testing.T) {
	if HeartMask(0, true).Bounds().Dx() != 0 || FlowerMask(0).Bounds().Dx() != 0 {
		t.Error("zero size masks should be empty")
	}
}
