package ajson

import "testing"

func mustParse(t *testing.T, s string) *Node {
	t.Helper()
	a := NewArena()
	n := ParseString(a, s)
	if n.IsError() {
		t.Fatalf("ParseString(%q) returned an error node: %s", s, n.AsError().Error())
	}
	return n
}

func mustReject(t *testing.T, s string) {
	t.Helper()
	a := NewArena()
	n := ParseString(a, s)
	if !n.IsError() {
		t.Fatalf("ParseString(%q) should have been rejected, got tag %v", s, n.Type())
	}
}

func TestParseRejectsLeadingZero(t *testing.T) {
	mustReject(t, "01")
	mustReject(t, "-01")
}

func TestParseRejectsIncompleteFraction(t *testing.T) {
	mustReject(t, "1.")
	mustReject(t, ".5")
}

func TestParseRejectsIncompleteExponent(t *testing.T) {
	mustReject(t, "1e")
	mustReject(t, "-0e")
}

func TestParseRejectsTrailingComma(t *testing.T) {
	mustReject(t, `{"a":1,}`)
	mustReject(t, `[1,2,]`)
}

func TestParseRejectsMissingColon(t *testing.T) {
	mustReject(t, `{"a" 1}`)
}

func TestParseRejectsUnterminatedString(t *testing.T) {
	mustReject(t, `{"a":"abc}`)
}

func TestParseRejectsUnterminatedArray(t *testing.T) {
	mustReject(t, `[1,2`)
}

func TestParseRejectsBadLiteral(t *testing.T) {
	mustReject(t, "trux")
	mustReject(t, `{"t": True}`)
}

func TestParseRejectsSpaceInsideNumber(t *testing.T) {
	mustReject(t, `{"n": - 1}`)
}

func TestParseRejectsNonJSONLiterals(t *testing.T) {
	mustReject(t, `{"n": NaN}`)
	mustReject(t, `{"n": Infinity}`)
}

func TestParseRejectsBOM(t *testing.T) {
	mustReject(t, "\xEF\xBB\xBF{}")
}

func TestParseAllowsTrailingGarbageAfterTopLevelValue(t *testing.T) {
	mustParse(t, `{} 42`)
}

func TestParseNumberClassification(t *testing.T) {
	cases := []struct {
		text string
		tag  Tag
	}{
		{"0", TagZero},
		{"-0", TagNumber},
		{"0.0", TagDecimal},
		{"1e2", TagNumber},
		{"42", TagNumber},
		{"-3.14", TagDecimal},
	}
	for _, c := range cases {
		n := mustParse(t, c.text)
		if n.Type() != c.tag {
			t.Errorf("Parse(%q).Type() = %v, want %v", c.text, n.Type(), c.tag)
		}
	}
}

func TestParseObjectKeyNotDecoded(t *testing.T) {
	key := string([]byte{92, 'u', '0', '0', '4', '1'}) // backslash-u0041, the escaped form of "A"
	n := mustParse(t, `{"`+key+`":1}`)
	v := n.ObjectScan(key)
	if v == nil {
		t.Fatal("key should be stored verbatim (encoded), not decoded, so lookup by the raw escaped form must succeed")
	}
	if v.ToInt(-1) != 1 {
		t.Errorf("value = %d, want 1", v.ToInt(-1))
	}
}

func TestParsePreservesInsertionOrder(t *testing.T) {
	n := mustParse(t, `{"c":1,"a":2,"b":3}`)
	var keys []string
	for e := n.ObjectFirst(); e != nil; e = e.Next() {
		keys = append(keys, string(e.Key()))
	}
	want := []string{"c", "a", "b"}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestParseRoundTripIdempotence(t *testing.T) {
	src := `{"a":1,"b":[1,2,3],"c":{"d":"e"},"f":null,"g":true,"h":false}`
	a := NewArena()
	n := ParseString(a, src)
	if n.IsError() {
		t.Fatalf("unexpected parse error: %s", n.AsError().Error())
	}
	out := DumpCompactToMemory(a, n)
	if string(out) != src {
		t.Errorf("round trip = %q, want %q", out, src)
	}
}

func TestParseInvalidUTF8InStringValueIsNotRejected(t *testing.T) {
	// the parser performs no UTF-8 validation; malformed bytes inside a
	// string value survive the parse and are scrubbed only by FilterUTF8
	// at emit time.
	a := NewArena()
	buf := a.Dup([]byte("{\"a\":\"\xC3(\"}"))
	n := Parse(a, buf)
	if n.IsError() {
		t.Fatalf("parse should not reject invalid UTF-8 inside a string: %s", n.AsError().Error())
	}
	v := n.ObjectScan("a")
	if v == nil || v.Type() != TagString {
		t.Fatal("expected a string value")
	}
}

func TestParseUnicodeEscapeKeyStoredVerbatim(t *testing.T) {
	escapedKey := string([]byte{'\\', 'u', '0', '0', '4', '1'}) // the 6 literal bytes
	src := `{"` + escapedKey + `":1}`
	a := NewArena()
	n := ParseString(a, src)
	if n.IsError() {
		t.Fatalf("parse error: %s", n.AsError().Error())
	}
	e := n.ObjectFirst()
	if string(e.Key()) != escapedKey {
		t.Fatalf("key bytes = %q, want the 6 literal bytes %q", e.Key(), escapedKey)
	}
	if n.ObjectScan("A") != nil {
		t.Error("scanning by the decoded key should not find anything: keys are not decoded")
	}
	out := DumpCompactToMemory(a, n)
	if string(out) != src {
		t.Errorf("dump = %q, want %q", out, src)
	}
}

func TestParseDumpScrubsInvalidUTF8InStringValue(t *testing.T) {
	a := NewArena()
	buf := a.Dup([]byte("{\"s\":\"\xC3(ABC\"}"))
	n := Parse(a, buf)
	if n.IsError() {
		t.Fatalf("parse error: %s", n.AsError().Error())
	}
	out := DumpCompactToMemory(a, n)
	if string(out) != `{"s":"(ABC"}` {
		t.Errorf("dump = %q, want %q", out, `{"s":"(ABC"}`)
	}
}

func TestParseEmptyContainers(t *testing.T) {
	n := mustParse(t, `{}`)
	if n.Type() != TagObject || n.Count() != 0 {
		t.Errorf("empty object: tag=%v count=%d", n.Type(), n.Count())
	}
	n2 := mustParse(t, `[]`)
	if n2.Type() != TagArray || n2.Count() != 0 {
		t.Errorf("empty array: tag=%v count=%d", n2.Type(), n2.Count())
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	mustReject(t, "")
	mustReject(t, "   ")
}

func TestParseDestructiveVsParseStringNonDestructive(t *testing.T) {
	src := "42"
	a := NewArena()
	before := src
	ParseString(a, src)
	if src != before {
		t.Error("ParseString must not mutate the caller's string")
	}
	buf := []byte("42 ")
	Parse(a, buf)
	if buf[2] != 0 {
		t.Error("Parse must NUL-terminate the scalar token in the caller's buffer")
	}
}
