package halfblock

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, dir string) string {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, newImage(2, 2, red, green, blue, yellow)); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "image.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestOpen(t *testing.T) {
	path := writePNG(t, t.TempDir())

	src, err := Open(path, true)
	if err != nil {
		t.Fatal(err)
	}

	want := "\x1b[38;2;255;0;0;48;2;0;0;255m▀\x1b[0m" +
		"\x1b[38;2;0;255;0;48;2;255;255;0m▀\x1b[0m"
	if got := collect(src, true); len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want [%q]", got, want)
	}

	src, err = Open(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*GrayAlphaSource); !ok {
		t.Errorf("Open(path, false) returned %T, want *GrayAlphaSource", src)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.png"), true)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("got error %v, want ErrFileNotFound", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("missing file also reported as a decode error")
	}
}

func TestOpenUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path, true)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("got error %v, want ErrDecode", err)
	}
	if errors.Is(err, ErrFileNotFound) {
		t.Error("undecodable file also reported as missing")
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, newImage(1, 1, red)); err != nil {
		t.Fatal(err)
	}

	src, err := Decode(&buf, true)
	if err != nil {
		t.Fatal(err)
	}

	want := "\x1b[38;2;255;0;0m▀\x1b[0m"
	if got := collect(src, true); len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want [%q]", got, want)
	}
}

func TestDecodeError(t *testing.T) {
	_, err := Decode(strings.NewReader(""), false)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("got error %v, want ErrDecode", err)
	}
}
