package assets

import (
	"image"
	"testing"
)

func TestIcon(t *testing.T) {
	g, err := Icon()
	if err != nil {
		t.Fatalf("Icon: %v", err)
	}
	if g.Width() != 16 || g.Height() != 16 || g.Count() == 0 {
		t.Fatalf("unexpected icon %dx%d with %d ink cells", g.Width(), g.Height(), g.Count())
	}
	g.Fill(false)
	again, _ := Icon()
	if again.Count() == 0 {
		t.Fatal("Icon should return a copy")
	}
}

func TestIconImage(t *testing.T) {
	for size, want := range map[int]int{64: 64, 50: 48, 8: 16} {
		img, err := IconImage(size)
		if err != nil {
			t.Fatalf("IconImage(%d): %v", size, err)
		}
		if img.Bounds() != image.Rect(0, 0, want, want) {
			t.Errorf("IconImage(%d) bounds %v, want %d square", size, img.Bounds(), want)
		}
	}
}
