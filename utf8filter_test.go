package ajson

import "testing"

func TestFilterUTF8PassesValidSequences(t *testing.T) {
	a := NewArena()
	in := []byte("hello \xC3\xA9 world") // "hello é world"
	out := FilterUTF8(a, in)
	if string(out) != "hello \xC3\xA9 world" {
		t.Errorf("FilterUTF8 dropped a valid 2-byte sequence: %q", out)
	}
}

func TestFilterUTF8DropsMalformedContinuation(t *testing.T) {
	a := NewArena()
	in := []byte{0xC3, '('} // 2-byte lead followed by a non-continuation byte
	out := FilterUTF8(a, in)
	if string(out) != "(" {
		t.Errorf("FilterUTF8 = %q, want the lead byte dropped and '(' kept", out)
	}
}

func TestFilterUTF8DropsTruncatedSequenceAtEnd(t *testing.T) {
	a := NewArena()
	in := []byte{'a', 0xE2, 0x82} // truncated 3-byte sequence (missing 3rd byte)
	out := FilterUTF8(a, in)
	if string(out) != "a" {
		t.Errorf("FilterUTF8 = %q, want only the leading valid byte kept", out)
	}
}

func TestFilterUTF8RoundTripsFourByteSequence(t *testing.T) {
	a := NewArena()
	in := []byte("\U0001F600") // emoji, 4-byte sequence
	out := FilterUTF8(a, in)
	if string(out) != string(in) {
		t.Errorf("FilterUTF8 = %q, want unchanged %q", out, in)
	}
}

func TestFilterUTF8NeverLongerThanInput(t *testing.T) {
	a := NewArena()
	in := []byte{0x80, 0x81, 'a', 0xFF, 'b'}
	out := FilterUTF8(a, in)
	if len(out) > len(in) {
		t.Errorf("FilterUTF8 output longer than input: %d > %d", len(out), len(in))
	}
	if string(out) != "ab" {
		t.Errorf("FilterUTF8 = %q, want %q", out, "ab")
	}
}

func TestFilterUTF8NoNormalization(t *testing.T) {
	a := NewArena()
	// "e" + combining acute accent (U+0065 U+0301), NOT the precomposed
	// "é" (U+00E9) — filtering must not normalize these together.
	in := []byte("é")
	out := FilterUTF8(a, in)
	if string(out) != string(in) {
		t.Errorf("FilterUTF8 should not normalize: got %q, want unchanged %q", out, in)
	}
}
