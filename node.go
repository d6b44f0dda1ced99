package ajson

import (
	"strconv"

	"github.com/pkg/errors"
)

// Tag identifies the kind of value a Node holds. The numeric ordering
// is load-bearing: IsScalarWithText, AsBinary and Decoded compare tags
// by order, so it must not be reshuffled. It mirrors the original C library's ajson_type_t exactly,
// including the binary tag that spec.md's distillation omitted (see
// SPEC_FULL.md).
type Tag uint8

const (
	TagError Tag = iota
	TagObject
	TagArray
	TagBinary
	TagNull
	TagString
	TagBoolFalse
	TagZero
	TagNumber
	TagDecimal
	TagBoolTrue
)

func (t Tag) String() string {
	switch t {
	case TagError:
		return "error"
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	case TagBinary:
		return "binary"
	case TagNull:
		return "null"
	case TagString:
		return "string"
	case TagBoolFalse:
		return "bool_false"
	case TagZero:
		return "zero"
	case TagNumber:
		return "number"
	case TagDecimal:
		return "decimal"
	case TagBoolTrue:
		return "bool_true"
	default:
		return "unknown"
	}
}

// Node is the tagged value record at the center of the tree: {tag,
// byte_length, parent, value_bytes} from spec.md §3. Containers carry
// their linked-list state in arr/obj instead of value bytes.
type Node struct {
	tag    Tag
	text   []byte // scalar payload: JSON-encoded body for strings, literal text otherwise
	parent *Node
	arena  *Arena

	arr *arrayData
	obj *objectData

	errSource []byte
	errAt     int
}

// Type returns the node's tag. A nil node reports TagError, matching
// the C library's "error on anything unusable" convention.
func (n *Node) Type() Tag {
	if n == nil {
		return TagError
	}
	return n.tag
}

func (n *Node) IsError() bool  { return n.Type() == TagError }
func (n *Node) IsObject() bool { return n.Type() == TagObject }
func (n *Node) IsArray() bool  { return n.Type() == TagArray }
func (n *Node) IsNull() bool   { return n.Type() == TagNull }
func (n *Node) IsBinary() bool { return n.Type() == TagBinary }
func (n *Node) IsBool() bool {
	t := n.Type()
	return t == TagBoolTrue || t == TagBoolFalse
}
func (n *Node) IsString() bool { return n.Type() == TagString }

// IsNumber reports whether the tag is one of the three number-like
// tags: zero, number, decimal.
func (n *Node) IsNumber() bool {
	switch n.Type() {
	case TagZero, TagNumber, TagDecimal:
		return true
	default:
		return false
	}
}

// IsScalarWithText reports the "tag >= string" predicate from spec.md
// §3: true for string, bool_false, zero, number, decimal, bool_true.
func (n *Node) IsScalarWithText() bool {
	return n != nil && n.tag >= TagString
}

// Parent returns the containing node, or nil for the root or an
// erased/cleared entry.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Text returns the node's raw encoded textual payload (ajsonv): for
// strings this is the JSON-escaped body without quotes; for other
// scalars with text it is the literal text. Returns nil for any node
// that is not scalar-with-text: containers, errors, null, binary and
// nil nodes.
func (n *Node) Text() []byte {
	if !n.IsScalarWithText() {
		return nil
	}
	return n.text
}

// AsBinary returns the raw value bytes for any scalar node, including
// binary nodes (ajsonb): binary, null, string, bool_false, zero,
// number, decimal, bool_true. Returns (nil, false) for objects, arrays
// and errors.
func (n *Node) AsBinary() ([]byte, bool) {
	if n == nil || n.tag < TagBinary {
		return nil, false
	}
	return n.text, true
}

// Decoded returns the decoded form of a string node's payload (escape
// sequences resolved, surrogate pairs merged). For the other
// scalar-with-text tags it returns the literal text unchanged (ajsond).
// Returns nil for null, binary, containers and errors.
func (n *Node) Decoded(a *Arena) []byte {
	if n == nil {
		return nil
	}
	if n.tag == TagString {
		out, _ := DecodeLen(a, n.text)
		return out
	}
	if n.tag > TagString {
		return n.text
	}
	return nil
}

func scalarText(n *Node) (string, bool) {
	if !n.IsScalarWithText() {
		return "", false
	}
	return string(n.text), true
}

// ToInt converts a scalar node's text to int, falling back to def.
func (n *Node) ToInt(def int) int {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToInt(s, def)
}

// ToInt32 converts a scalar node's text to int32, falling back to def.
func (n *Node) ToInt32(def int32) int32 {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToInt32(s, def)
}

// ToUint32 converts a scalar node's text to uint32, falling back to def.
func (n *Node) ToUint32(def uint32) uint32 {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToUint32(s, def)
}

// ToInt64 converts a scalar node's text to int64, falling back to def.
func (n *Node) ToInt64(def int64) int64 {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToInt64(s, def)
}

// ToUint64 converts a scalar node's text to uint64, falling back to def.
func (n *Node) ToUint64(def uint64) uint64 {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToUint64(s, def)
}

// ToFloat converts a scalar node's text to float32, falling back to def.
func (n *Node) ToFloat(def float32) float32 {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToFloat(s, def)
}

// ToDouble converts a scalar node's text to float64, falling back to def.
func (n *Node) ToDouble(def float64) float64 {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToDouble(s, def)
}

// ToBool converts a node to bool. bool_true/bool_false/zero take the
// obvious fast path; other scalars fall back to the textual contract
// in TryToBool/ToBool.
func (n *Node) ToBool(def bool) bool {
	switch n.Type() {
	case TagBoolTrue:
		return true
	case TagBoolFalse:
		return false
	case TagZero:
		return false
	}
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return ToBool(s, def)
}

// ToStr returns a node's scalar text as a string, or def if n is not a
// scalar-with-text node. The returned string aliases arena memory.
func (n *Node) ToStr(def string) string {
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return s
}

// ToStrDup is ToStr but copies the result (or def) into a, so the
// caller gets an arena-owned value independent of n's lifetime.
func (n *Node) ToStrDup(a *Arena, def string) []byte {
	s, ok := scalarText(n)
	if !ok {
		s = def
	}
	return a.DupString(s)
}

// RemoveChild removes a single child by key (object) or decimal index
// (array). Unlike ObjectRemove/ArrayErase, which signal a miss by
// returning false/doing nothing, this is the error-returning surface:
// it reports ErrNotArrayOrObject when called on a scalar node, and
// ErrNotFound when key does not resolve to an existing entry or index.
func (n *Node) RemoveChild(key string) error {
	switch n.Type() {
	case TagObject:
		if !n.ObjectRemove(key) {
			return errors.Wrapf(ErrNotFound, "key %q", key)
		}
		return nil
	case TagArray:
		idx, ok := TryToInt(key)
		if !ok {
			return errors.Wrapf(ErrNotFound, "index %q", key)
		}
		e := n.ArrayNthNode(idx)
		if e == nil {
			return errors.Wrapf(ErrNotFound, "index %d", idx)
		}
		n.ArrayErase(e)
		return nil
	default:
		return errors.Wrapf(ErrNotArrayOrObject, "in %s", n.Type())
	}
}

// --- builders ---

// NewTrue returns a bool_true literal node.
func NewTrue(a *Arena) *Node { return &Node{tag: TagBoolTrue, text: []byte("true"), arena: a} }

// NewFalse returns a bool_false literal node.
func NewFalse(a *Arena) *Node { return &Node{tag: TagBoolFalse, text: []byte("false"), arena: a} }

// NewNull returns a null literal node.
func NewNull(a *Arena) *Node { return &Node{tag: TagNull, text: []byte("null"), arena: a} }

// NewZero returns the canonical zero literal node.
func NewZero(a *Arena) *Node { return &Node{tag: TagZero, text: []byte("0"), arena: a} }

// NewBinary builds a binary node aliasing b (not emitted by the JSON
// emitters, see SPEC_FULL.md).
func NewBinary(a *Arena, b []byte) *Node { return &Node{tag: TagBinary, text: b, arena: a} }

// NewNumberFromInt builds a number node from a signed integer.
func NewNumberFromInt(a *Arena, n int64) *Node {
	return &Node{tag: TagNumber, text: a.DupString(strconv.FormatInt(n, 10)), arena: a}
}

// NewNumberFromUint builds a number node from an unsigned integer.
func NewNumberFromUint(a *Arena, n uint64) *Node {
	return &Node{tag: TagNumber, text: a.DupString(strconv.FormatUint(n, 10)), arena: a}
}

// NewNumberFromText builds a number node, storing s verbatim (no
// validation: callers that want parser-level validation should run the
// text through Parse instead).
func NewNumberFromText(a *Arena, s string) *Node {
	return &Node{tag: TagNumber, text: a.DupString(s), arena: a}
}

// NewDecimalFromText builds a decimal node, storing s verbatim.
func NewDecimalFromText(a *Arena, s string) *Node {
	return &Node{tag: TagDecimal, text: a.DupString(s), arena: a}
}

// NewString stores s as a string node's encoded payload without
// escaping and without an arena copy: s is assumed already in
// JSON-escaped form (alias, raw). The payload is the []byte conversion
// of s, which Go allocates outside the arena.
func NewString(a *Arena, s string) *Node {
	return &Node{tag: TagString, text: []byte(s), arena: a}
}

// NewStringCopy copies s into the arena as a string node's encoded
// payload without escaping (copy, raw).
func NewStringCopy(a *Arena, s string) *Node {
	return &Node{tag: TagString, text: a.DupString(s), arena: a}
}

// NewEncodedString escapes s and stores the result; when nothing needed
// escaping, the []byte conversion of s is stored as it is, with no
// arena copy (copy-or-alias, escaped).
func NewEncodedString(a *Arena, s string) *Node {
	return &Node{tag: TagString, text: Encode(a, []byte(s)), arena: a}
}

// NewEncodedStringCopy is NewEncodedString but guarantees the result is
// always arena-owned, even when encoding was a no-op (copy, escaped).
func NewEncodedStringCopy(a *Arena, s string) *Node {
	enc := Encode(a, []byte(s))
	out := a.Alloc(len(enc))
	copy(out, enc)
	return &Node{tag: TagString, text: out, arena: a}
}

// NewError builds a standalone error node, as returned by Parse on
// failure.
func NewError(source []byte, at int) *Node {
	return &Node{tag: TagError, errSource: source, errAt: at}
}
