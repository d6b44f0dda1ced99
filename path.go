package ajson

import (
	"strconv"
	"strings"
)

// splitPath splits a dotted path on '.', honoring a backslash escape so
// literal dots in keys can be written as "\.". This mirrors
// Arena.SplitWithEscape but operates on a plain string, since paths are
// typically short, caller-supplied literals rather than arena-owned
// byte slices.
func splitPath(path string) []string {
	var out []string
	var buf strings.Builder
	i := 0
	for i < len(path) {
		if path[i] == '\\' && i+1 < len(path) && path[i+1] == '.' {
			buf.WriteByte('.')
			i += 2
			continue
		}
		if path[i] == '.' {
			out = append(out, buf.String())
			buf.Reset()
			i++
			continue
		}
		buf.WriteByte(path[i])
		i++
	}
	out = append(out, buf.String())
	return out
}

// Path evaluates a dotted path against n, applying spec.md §4.7's
// per-segment rules: object segments are literal (scan-matched) keys;
// array segments are either a "key=value" predicate filter or a
// decimal index (balanced scan-index); anything else yields nil.
func Path(n *Node, path string) *Node {
	cur := n
	for _, seg := range splitPath(path) {
		if cur == nil {
			return nil
		}
		switch cur.Type() {
		case TagObject:
			cur = cur.ObjectScan(seg)
		case TagArray:
			if eq := strings.IndexByte(seg, '='); eq >= 0 {
				key, val := seg[:eq], seg[eq+1:]
				cur = findArrayPredicate(cur, key, val)
			} else if isAllDigits(seg) {
				idx, _ := strconv.Atoi(seg)
				cur = cur.ArrayScanIndex(idx)
			} else {
				return nil
			}
		default:
			return nil
		}
	}
	return cur
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func findArrayPredicate(arr *Node, key, val string) *Node {
	for e := arr.ArrayFirst(); e != nil; e = e.Next() {
		child := e.Value()
		if child.Type() != TagObject {
			continue
		}
		field := child.ObjectScan(key)
		if field != nil && field.IsScalarWithText() && string(field.Text()) == val {
			return child
		}
	}
	return nil
}

// PathScalarView returns the encoded textual view of the node at path
// (ajsono_pathv), or nil if the path does not resolve to a
// scalar-with-text node.
func PathScalarView(n *Node, path string) []byte {
	return Path(n, path).Text()
}

// PathDecodedString returns the decoded string at path (ajsono_pathd),
// or nil if the path does not resolve.
func PathDecodedString(a *Arena, n *Node, path string) []byte {
	return Path(n, path).Decoded(a)
}
