package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImageBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := testImageBytes(t, 12, 8)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	if err := os.WriteFile(path, testImageBytes(t, 10, 10), 0o644); err != nil {
		t.Fatalf("write test image: %v", err)
	}

	loader := NewFileLoader()
	img, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if _, err := loader.Load(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := loader.Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := loader.Load(dir); err == nil {
		t.Error("expected error for directory path")
	}
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name         string
		w, h, maxDim int
		wantW, wantH int
	}{
		{name: "wide image", w: 600, h: 300, maxDim: 300, wantW: 300, wantH: 150},
		{name: "tall image", w: 200, h: 400, maxDim: 100, wantW: 50, wantH: 100},
		{name: "already small", w: 120, h: 90, maxDim: 300, wantW: 120, wantH: 90},
		{name: "zero maxDim uses default", w: 600, h: 600, maxDim: 0, wantW: 300, wantH: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Downscale(src, tt.maxDim)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("Downscale(%dx%d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxDim, got.Bounds().Dx(), got.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("found %d image files, want 2", len(files))
	}

	empty := t.TempDir()
	if _, err := ScanDirectoryForImages(empty); err == nil {
		t.Error("expected error for directory with no images")
	}
}

func TestSelectRandomImage(t *testing.T) {
	paths := []string{"a.png", "b.png", "c.png"}
	got, err := SelectRandomImage(paths)
	if err != nil {
		t.Fatalf("SelectRandomImage: %v", err)
	}
	found := false
	for _, p := range paths {
		if p == got {
			found = true
		}
	}
	if !found {
		t.Errorf("selected %q not in input list", got)
	}

	if _, err := SelectRandomImage(nil); err == nil {
		t.Error("expected error for empty list")
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"icon.png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"doc.pdf", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := isImageFile(tt.path); got != tt.want {
			t.Errorf("isImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
