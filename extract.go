package ajson

// StringArrayOf decodes n into a slice of strings: an array yields one
// decoded string per scalar-with-text element (containers, null and
// binary elements are skipped); a single scalar-with-text node yields a
// one-element slice. Anything else, null included, yields nil.
func StringArrayOf(a *Arena, n *Node) []string {
	if n == nil {
		return nil
	}
	if n.Type() == TagArray {
		out := make([]string, 0, n.Count())
		for e := n.ArrayFirst(); e != nil; e = e.Next() {
			v := e.Value()
			if !v.IsScalarWithText() {
				continue
			}
			out = append(out, string(v.Decoded(a)))
		}
		return out
	}
	if n.IsScalarWithText() {
		return []string{string(n.Decoded(a))}
	}
	return nil
}

// FloatArrayOf decodes n into a slice of float64s: non-numeric elements
// coerce to 0.0 (see DESIGN.md Open Question decisions — whether that should
// instead surface an error is left unresolved, preserved as observed
// behavior).
func FloatArrayOf(n *Node) []float64 {
	if n == nil {
		return nil
	}
	if n.Type() == TagArray {
		out := make([]float64, 0, n.Count())
		for e := n.ArrayFirst(); e != nil; e = e.Next() {
			out = append(out, e.Value().ToDouble(0.0))
		}
		return out
	}
	return []float64{n.ToDouble(0.0)}
}
