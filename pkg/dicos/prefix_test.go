package dicos

import "testing"

func TestDetectPrefix(t *testing.T) {
	t.Run("all zero preamble", func(t *testing.T) {
		b := makePreambleAndPrefix()
		if !DetectPrefix(b) {
			t.Fatal("expected valid prefix")
		}
	})

	t.Run("arbitrary preamble bytes", func(t *testing.T) {
		b := makePreambleAndPrefix()
		b[0] = 1
		if !DetectPrefix(b) {
			t.Fatal("preamble content must not affect detection")
		}
	})

	t.Run("too short", func(t *testing.T) {
		if DetectPrefix(make([]byte, 100)) {
			t.Fatal("expected false for short buffer")
		}
	})

	t.Run("missing magic", func(t *testing.T) {
		b := make([]byte, preambleSize)
		if DetectPrefix(b) {
			t.Fatal("expected false without DICM magic")
		}
	})
}
