package ajson

// Valid reports whether data parses as JSON without error.
func Valid(data []byte) bool {
	a := NewArena()
	buf := a.Dup(data)
	return !Parse(a, buf).IsError()
}
