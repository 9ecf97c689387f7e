package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestProcessSmallImageSkipsThumb(t *testing.T) {
	p, err := Process(encodePNG(t, 100, 80))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.MIME != "image/png" {
		t.Errorf("MIME = %q, want image/png", p.MIME)
	}
	if p.Width != 100 || p.Height != 80 {
		t.Errorf("dims = %dx%d, want 100x80", p.Width, p.Height)
	}
	if p.Thumb != nil {
		t.Error("small image should not get a thumbnail")
	}
}

func TestProcessLargeImageScalesLongestEdge(t *testing.T) {
	p, err := Process(encodePNG(t, 1280, 640))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.Thumb == nil {
		t.Fatal("expected a thumbnail")
	}
	thumb, err := png.Decode(bytes.NewReader(p.Thumb))
	if err != nil {
		t.Fatalf("decode thumb: %v", err)
	}
	b := thumb.Bounds()
	if b.Dx() != ThumbMaxDim {
		t.Errorf("thumb width = %d, want %d", b.Dx(), ThumbMaxDim)
	}
	if b.Dy() != ThumbMaxDim/2 {
		t.Errorf("thumb height = %d, want %d (aspect preserved)", b.Dy(), ThumbMaxDim/2)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	if _, err := Process([]byte("not an image at all")); err == nil {
		t.Error("garbage bytes should not decode")
	}
	if _, err := Process(nil); err == nil {
		t.Error("empty input should fail")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, max      int
		wantW, wantH   int
	}{
		{1000, 500, 320, 320, 160},
		{500, 1000, 320, 160, 320},
		{400, 400, 320, 320, 320},
		{10000, 1, 320, 320, 1},
	}
	for _, tt := range tests {
		gotW, gotH := fit(tt.w, tt.h, tt.max)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("fit(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.max, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}
