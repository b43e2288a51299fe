package media

import (
	"os"
	"path/filepath"
	"testing"
)

func testResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	dir := t.TempDir()
	return NewResolver(dir), dir
}

func TestLoadImage_Present(t *testing.T) {
	r, dir := testResolver(t)
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, ok := r.LoadImage("photo.jpg")
	if !ok {
		t.Fatal("expected photo to resolve")
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("data = %q, want jpeg-bytes", data)
	}
}

func TestLoadImage_Absent(t *testing.T) {
	r, _ := testResolver(t)

	if _, ok := r.LoadImage("missing.jpg"); ok {
		t.Error("missing file resolved")
	}
	if _, ok := r.LoadImage(""); ok {
		t.Error("empty ref resolved")
	}
}

func TestLoad_RejectsEscapingRefs(t *testing.T) {
	r, dir := testResolver(t)
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := r.LoadImage("../secret.txt"); ok {
		t.Error("ref escaped the media directory")
	}
}

func TestExists(t *testing.T) {
	r, dir := testResolver(t)
	if err := os.WriteFile(filepath.Join(dir, "clip.ogg"), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !r.Exists("clip.ogg") {
		t.Error("expected clip.ogg to exist")
	}
	if r.Exists("nope.ogg") {
		t.Error("missing ref reported as existing")
	}
}

func TestLoadAudio_NestedRef(t *testing.T) {
	r, dir := testResolver(t)
	if err := os.MkdirAll(filepath.Join(dir, "voice"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "voice", "clip.ogg"), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := r.LoadAudio("voice/clip.ogg"); !ok {
		t.Error("nested ref did not resolve")
	}
}
