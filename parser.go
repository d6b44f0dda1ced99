package ajson

// Parser: a single-pass, destructive, recursive-descent reader that
// builds the tree directly in the arena. Each production below
// corresponds to one goto-label in the original ajson_parse state
// machine (start_value/start_key/keyed_next_digit/look_for_key/...);
// Go's call stack takes the place of the original's explicit label
// jumps, since JSON nesting is bounded by the input and recursion needs
// no trampoline here.
//
// Numbers and literals are destructively NUL-terminated exactly the
// way the original does it: the byte immediately following the token
// is read into a local variable first, the buffer is zeroed at that
// position, and every subsequent decision about that byte consults the
// local variable, never the (now zeroed) buffer slot. Strings terminate
// at their own closing quote, which is zeroed the same way and is never
// revisited at all.
type parseState struct {
	arena *Arena
	buf   []byte
	pos   int
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func (p *parseState) errAt(at int) *Node {
	return NewError(p.buf, at)
}

// delim represents the next significant (non-whitespace) byte after a
// just-parsed scalar, or the lack of one at end of input.
type delim struct {
	b  byte
	ok bool
}

// afterScalar is called immediately after a scalar token has been
// NUL-terminated at p.pos, with the real byte that used to live there
// passed in as first/firstOK. It skips any further whitespace (reading
// fresh, un-destroyed bytes for everything past the first) and returns
// the first significant byte found, leaving p.pos pointing at it.
func (p *parseState) afterScalar(first byte, firstOK bool) delim {
	ch, ok := first, firstOK
	for ok && isSpace(ch) {
		p.pos++
		if p.pos >= len(p.buf) {
			ok = false
			break
		}
		ch = p.buf[p.pos]
	}
	return delim{b: ch, ok: ok}
}

func (p *parseState) skipWS() {
	for p.pos < len(p.buf) && isSpace(p.buf[p.pos]) {
		p.pos++
	}
}

// Parse parses buf[0:] in place, destructively, and returns the root
// node (or an error node on failure). buf must be writable.
func Parse(a *Arena, buf []byte) *Node {
	if len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
		return NewError(buf, 0)
	}
	p := &parseState{arena: a, buf: buf}
	p.skipWS()
	if p.pos >= len(p.buf) {
		return p.errAt(p.pos)
	}
	node, _ := p.parseValue()
	return node
}

// ParseString duplicates s into the arena and parses the copy, leaving
// the caller's string untouched (the non-destructive wrapper).
func ParseString(a *Arena, s string) *Node {
	buf := a.DupString(s)
	return Parse(a, buf)
}

// parseValue parses one value and reports the delimiter immediately
// following it (whitespace already skipped), for callers that need to
// decide the next structural token without re-scanning.
func (p *parseState) parseValue() (*Node, delim) {
	p.skipWS()
	if p.pos >= len(p.buf) {
		return p.errAt(p.pos), delim{}
	}
	c := p.buf[p.pos]
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return p.parseString()
	case c == '-' || isDigit(c):
		return p.parseNumber()
	case c == 't':
		return p.parseLiteral("true", TagBoolTrue)
	case c == 'f':
		return p.parseLiteral("false", TagBoolFalse)
	case c == 'n':
		return p.parseLiteral("null", TagNull)
	default:
		return p.errAt(p.pos), delim{}
	}
}

func (p *parseState) parseObject() (*Node, delim) {
	p.pos++ // consume '{'
	obj := NewObject(p.arena)
	p.skipWS()
	if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
		p.pos++
		return obj, p.peekDelim()
	}
	for {
		p.skipWS()
		if p.pos >= len(p.buf) || p.buf[p.pos] != '"' {
			return p.errAt(p.pos), delim{}
		}
		keyNode, kd := p.parseString()
		if keyNode.IsError() {
			return keyNode, delim{}
		}
		if !kd.ok || kd.b != ':' {
			return p.errAt(p.pos), delim{}
		}
		p.pos++ // consume ':'
		val, vd := p.parseValue()
		if val.IsError() {
			return val, delim{}
		}
		obj.objectAppendRaw(keyNode.text, val)

		if !vd.ok {
			return p.errAt(p.pos), delim{}
		}
		switch vd.b {
		case ',':
			p.pos++
			p.skipWS()
			if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
				return p.errAt(p.pos), delim{} // trailing comma
			}
			continue
		case '}':
			p.pos++
			return obj, p.peekDelim()
		default:
			return p.errAt(p.pos), delim{}
		}
	}
}

func (p *parseState) parseArray() (*Node, delim) {
	p.pos++ // consume '['
	arr := NewArray(p.arena)
	p.skipWS()
	if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
		p.pos++
		return arr, p.peekDelim()
	}
	for {
		val, vd := p.parseValue()
		if val.IsError() {
			return val, delim{}
		}
		arr.ArrayAppend(val)

		if !vd.ok {
			return p.errAt(p.pos), delim{}
		}
		switch vd.b {
		case ',':
			p.pos++
			p.skipWS()
			if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
				return p.errAt(p.pos), delim{} // trailing comma
			}
			continue
		case ']':
			p.pos++
			return arr, p.peekDelim()
		default:
			return p.errAt(p.pos), delim{}
		}
	}
}

// peekDelim is used after closing a container: containers (unlike
// scalars) are never NUL-terminated, so the following byte can simply
// be skipped-and-read in the ordinary way.
func (p *parseState) peekDelim() delim {
	p.skipWS()
	if p.pos >= len(p.buf) {
		return delim{}
	}
	return delim{b: p.buf[p.pos], ok: true}
}

// parseString scans a quoted string body, honoring backslash-run parity
// to decide whether a quote is escaped, and destructively zeroes the
// closing quote once the body span is known (that byte is never read
// again).
func (p *parseState) parseString() (*Node, delim) {
	start := p.pos
	p.pos++ // consume opening quote
	contentStart := p.pos
	for {
		if p.pos >= len(p.buf) {
			return p.errAt(start), delim{}
		}
		if p.buf[p.pos] == '"' {
			backslashes := 0
			for i := p.pos - 1; i >= contentStart && p.buf[i] == '\\'; i-- {
				backslashes++
			}
			if backslashes%2 == 1 {
				p.pos++
				continue
			}
			break
		}
		p.pos++
	}
	text := p.buf[contentStart:p.pos]
	p.buf[p.pos] = 0 // destructive: terminate the scalar token in place
	p.pos++          // step past the (now zeroed) closing quote
	node := &Node{tag: TagString, text: text, arena: p.arena}
	if p.pos >= len(p.buf) {
		return node, delim{}
	}
	return node, p.afterScalar(p.buf[p.pos], true)
}

// parseNumber implements the grammar of spec.md §4.3: optional '-',
// then '0' or a non-zero digit run, optional fraction, optional
// exponent. Leading zeros (other than a bare 0/-0) are rejected.
func (p *parseState) parseNumber() (*Node, delim) {
	start := p.pos
	if p.buf[p.pos] == '-' {
		p.pos++
	}
	if p.pos >= len(p.buf) || !isDigit(p.buf[p.pos]) {
		return p.errAt(p.pos), delim{}
	}
	if p.buf[p.pos] == '0' {
		p.pos++
		if p.pos < len(p.buf) && isDigit(p.buf[p.pos]) {
			return p.errAt(p.pos), delim{}
		}
	} else {
		for p.pos < len(p.buf) && isDigit(p.buf[p.pos]) {
			p.pos++
		}
	}
	isDecimal := false
	if p.pos < len(p.buf) && p.buf[p.pos] == '.' {
		isDecimal = true
		p.pos++
		if p.pos >= len(p.buf) || !isDigit(p.buf[p.pos]) {
			return p.errAt(p.pos), delim{}
		}
		for p.pos < len(p.buf) && isDigit(p.buf[p.pos]) {
			p.pos++
		}
	}
	if p.pos < len(p.buf) && (p.buf[p.pos] == 'e' || p.buf[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.buf) && (p.buf[p.pos] == '+' || p.buf[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.buf) || !isDigit(p.buf[p.pos]) {
			return p.errAt(p.pos), delim{}
		}
		for p.pos < len(p.buf) && isDigit(p.buf[p.pos]) {
			p.pos++
		}
	}
	text := p.buf[start:p.pos]
	tag := TagNumber
	if isDecimal {
		tag = TagDecimal
	} else if string(text) == "0" {
		tag = TagZero
	}
	node := &Node{tag: tag, text: text, arena: p.arena}
	if p.pos >= len(p.buf) {
		return node, delim{}
	}
	next := p.buf[p.pos]
	p.buf[p.pos] = 0
	return node, p.afterScalar(next, true)
}

// parseLiteral matches a case-sensitive keyword (true/false/null) and
// destructively NUL-terminates it the same way parseNumber does.
func (p *parseState) parseLiteral(lit string, tag Tag) (*Node, delim) {
	start := p.pos
	end := start + len(lit)
	if end > len(p.buf) || string(p.buf[start:end]) != lit {
		return p.errAt(start), delim{}
	}
	node := &Node{tag: tag, text: p.buf[start:end], arena: p.arena}
	p.pos = end
	if p.pos >= len(p.buf) {
		return node, delim{}
	}
	next := p.buf[p.pos]
	p.buf[p.pos] = 0
	return node, p.afterScalar(next, true)
}
