package utils

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
)

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := bytes.Buffer{}
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDownscaleImageShrinksWideImages(t *testing.T) {
	original := pngImage(t, 400, 200)
	data, ext, err := DownscaleImage(bytes.NewReader(original), 100)
	if err != nil {
		t.Fatalf("DownscaleImage: %v", err)
	}
	if ext != ".jpg" {
		t.Errorf("ext = %q, want .jpg for a re-encoded image", ext)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("result is %dx%d, want 100x50", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDownscaleImagePassesThroughSmallImages(t *testing.T) {
	original := pngImage(t, 50, 50)
	data, ext, err := DownscaleImage(bytes.NewReader(original), 100)
	if err != nil {
		t.Fatalf("DownscaleImage: %v", err)
	}
	if ext != ".png" {
		t.Errorf("ext = %q, want .png", ext)
	}
	if !bytes.Equal(data, original) {
		t.Error("small image was not passed through untouched")
	}
}

func TestDownscaleImageRejectsGarbage(t *testing.T) {
	_, _, err := DownscaleImage(strings.NewReader("not an image"), 100)
	if err == nil {
		t.Error("garbage input was accepted")
	}
}
