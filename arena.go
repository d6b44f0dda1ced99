package ajson

import "fmt"

// Arena is a bump allocator: it owns every byte slice and string handed
// out by Parse, the builders and the emitters. Nothing is freed
// individually; the whole arena is dropped at once by letting it become
// unreachable. Callers must not let an Arena go out of scope before the
// last use of any node, key or value_bytes pointer drawn from it.
type Arena struct {
	blocks [][]byte
	cur    []byte
}

const arenaBlockSize = 4096

// NewArena returns an empty arena ready for allocation.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc returns n fresh, zero-valued bytes from the arena.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if len(a.cur) < n {
		size := arenaBlockSize
		if n > size {
			size = n
		}
		a.cur = make([]byte, size)
		a.blocks = append(a.blocks, a.cur)
	}
	b := a.cur[:n:n]
	a.cur = a.cur[n:]
	return b
}

// Zalloc is an alias for Alloc: arena memory in this implementation is
// always zeroed by the runtime allocator.
func (a *Arena) Zalloc(n int) []byte {
	return a.Alloc(n)
}

// Dup copies b into the arena and returns the copy.
func (a *Arena) Dup(b []byte) []byte {
	out := a.Alloc(len(b))
	copy(out, b)
	return out
}

// DupString copies s into the arena and returns the copy as a byte
// slice (the arena has no notion of a C-style string terminator; callers
// needing one should rely on the slice length instead).
func (a *Arena) DupString(s string) []byte {
	out := a.Alloc(len(s))
	copy(out, s)
	return out
}

// Strdupvf formats according to format and args and copies the result
// into the arena, mirroring the C library's strdupvf helper.
func (a *Arena) Strdupvf(format string, args ...interface{}) []byte {
	return a.DupString(fmt.Sprintf(format, args...))
}

// SplitWithEscape splits s on sep, treating an occurrence of sep
// immediately preceded by esc as a literal (non-separator) character.
// The escape byte itself is dropped from the returned segments. Segments
// are allocated in the arena.
func (a *Arena) SplitWithEscape(sep, esc byte, s []byte) [][]byte {
	var out [][]byte
	start := 0
	buf := make([]byte, 0, len(s))
	flush := func(from, to int) {
		buf = buf[:0]
		for i := from; i < to; i++ {
			if s[i] == esc && i+1 < to && s[i+1] == sep {
				continue
			}
			buf = append(buf, s[i])
		}
		out = append(out, a.Dup(buf))
	}
	i := 0
	for i < len(s) {
		if s[i] == esc && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == sep {
			flush(start, i)
			start = i + 1
		}
		i++
	}
	flush(start, len(s))
	return out
}
