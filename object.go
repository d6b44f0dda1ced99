package ajson

import "bytes"

// ObjectEntry is one link in an object's insertion-ordered list. It
// doubles as a node in the intrusive ordered tree index (left/right),
// mirroring the original C library's ajsono_s, which embeds a
// macro_map_t node directly in the entry struct instead of allocating a
// separate tree node per entry.
type ObjectEntry struct {
	key        []byte
	value      *Node
	prev, next *ObjectEntry

	left, right *ObjectEntry
}

// Key returns the entry's key bytes, verbatim as stored (JSON-encoded
// form, not decoded).
func (e *ObjectEntry) Key() []byte {
	if e == nil {
		return nil
	}
	return e.key
}

// Value returns the entry's node.
func (e *ObjectEntry) Value() *Node {
	if e == nil {
		return nil
	}
	return e.value
}

// Next returns the following entry in insertion order, or nil at the
// tail.
func (e *ObjectEntry) Next() *ObjectEntry {
	if e == nil {
		return nil
	}
	return e.next
}

// Previous returns the preceding entry in insertion order, or nil at
// the head.
func (e *ObjectEntry) Previous() *ObjectEntry {
	if e == nil {
		return nil
	}
	return e.prev
}

type indexKind uint8

const (
	indexNone indexKind = iota
	indexSnapshot
	indexTree
)

type objectData struct {
	head, tail *ObjectEntry
	count      int

	kind     indexKind
	snapshot []*ObjectEntry // sorted by key, active iff kind == indexSnapshot
	tree     *ObjectEntry   // tree root, active iff kind == indexTree
}

// NewObject returns an empty object node.
func NewObject(a *Arena) *Node {
	return &Node{tag: TagObject, arena: a, obj: &objectData{}}
}

// ObjectFirst returns the head entry, or nil if empty.
func (n *Node) ObjectFirst() *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	return n.obj.head
}

// ObjectLast returns the tail entry, or nil if empty.
func (n *Node) ObjectLast() *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	return n.obj.tail
}

func newObjectEntry(a *Arena, key []byte, copyKey bool, value *Node) *ObjectEntry {
	k := key
	if copyKey {
		k = a.Dup(key)
	}
	return &ObjectEntry{key: k, value: value}
}

func (od *objectData) linkTail(e *ObjectEntry) {
	if od.tail == nil {
		od.head, od.tail = e, e
	} else {
		e.prev = od.tail
		od.tail.next = e
		od.tail = e
	}
	od.count++
}

func (od *objectData) unlink(e *ObjectEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		od.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		od.tail = e.prev
	}
	e.prev, e.next = nil, nil
	od.count--
}

// objectAppendRaw appends a key/value pair aliasing key directly
// (no copy), used by the parser since parsed keys already live inside
// the (arena-owned, for ParseString; caller-owned, for Parse) source
// buffer and are stored verbatim per spec.md §3.
func (n *Node) objectAppendRaw(key []byte, item *Node) *ObjectEntry {
	item.parent = n
	e := &ObjectEntry{key: key, value: item}
	n.obj.linkTail(e)
	return e
}

// ObjectAppend links a new entry at the tail in O(1) and touches
// neither lookup index (spec.md §4.5): callers who never look up by
// key pay nothing for it.
func (n *Node) ObjectAppend(key string, item *Node, copyKey bool) *ObjectEntry {
	item.parent = n
	e := newObjectEntry(n.arena, []byte(key), copyKey, item)
	n.obj.linkTail(e)
	return e
}

// ObjectScan performs a linear, order-preserving lookup for the first
// entry with an exact byte match on key.
func (n *Node) ObjectScan(key string) *Node {
	if n == nil || n.tag != TagObject {
		return nil
	}
	kb := []byte(key)
	for e := n.obj.head; e != nil; e = e.next {
		if bytes.Equal(e.key, kb) {
			return e.value
		}
	}
	return nil
}

// ObjectScanReverse is ObjectScan but returns the last matching entry,
// for callers that need deterministic behavior over duplicate keys.
func (n *Node) ObjectScanReverse(key string) *Node {
	if n == nil || n.tag != TagObject {
		return nil
	}
	kb := []byte(key)
	for e := n.obj.tail; e != nil; e = e.prev {
		if bytes.Equal(e.key, kb) {
			return e.value
		}
	}
	return nil
}

func (n *Node) activateSnapshot() {
	od := n.obj
	od.tree = nil
	od.snapshot = make([]*ObjectEntry, 0, od.count)
	for e := od.head; e != nil; e = e.next {
		od.snapshot = append(od.snapshot, e)
	}
	sortEntries(od.snapshot)
	od.kind = indexSnapshot
}

func sortEntries(es []*ObjectEntry) {
	// simple insertion sort: object sizes here are small and this keeps
	// the implementation a direct, obviously-correct mirror of "sorted
	// array of entry pointers" from spec.md rather than reaching for a
	// generic sort for a handful of elements at a time.
	for i := 1; i < len(es); i++ {
		j := i
		for j > 0 && bytes.Compare(es[j-1].key, es[j].key) > 0 {
			es[j-1], es[j] = es[j], es[j-1]
			j--
		}
	}
}

// ObjectGet looks up key using the sorted-snapshot index (ajsono_get).
// The snapshot is built lazily on first call and is not updated by
// plain appends; it is invalidated (and lazily rebuilt) by Set/Remove.
// Activating the snapshot discards any active tree index.
func (n *Node) ObjectGet(key string) *Node {
	if n == nil || n.tag != TagObject {
		return nil
	}
	od := n.obj
	if od.kind != indexSnapshot {
		n.activateSnapshot()
	}
	kb := []byte(key)
	lo, hi := 0, len(od.snapshot)
	for lo < hi {
		mid := (lo + hi) / 2
		c := bytes.Compare(od.snapshot[mid].key, kb)
		if c == 0 {
			return od.snapshot[mid].value
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return nil
}

func treeInsert(root *ObjectEntry, e *ObjectEntry) *ObjectEntry {
	if root == nil {
		return e
	}
	if bytes.Compare(e.key, root.key) < 0 {
		root.left = treeInsert(root.left, e)
	} else {
		root.right = treeInsert(root.right, e)
	}
	return root
}

func treeFind(root *ObjectEntry, key []byte) *ObjectEntry {
	for root != nil {
		c := bytes.Compare(key, root.key)
		switch {
		case c == 0:
			return root
		case c < 0:
			root = root.left
		default:
			root = root.right
		}
	}
	return nil
}

// treeErase removes the node with the given key from the intrusive
// BST, returning the new subtree root. It is a plain unbalanced BST
// delete; spec.md's testable properties never require balance, only
// the externally observed find/insert/erase contract.
func treeErase(root *ObjectEntry, key []byte) *ObjectEntry {
	if root == nil {
		return nil
	}
	c := bytes.Compare(key, root.key)
	switch {
	case c < 0:
		root.left = treeErase(root.left, key)
		return root
	case c > 0:
		root.right = treeErase(root.right, key)
		return root
	}
	if root.left == nil {
		r := root.right
		root.right = nil
		return r
	}
	if root.right == nil {
		l := root.left
		root.left = nil
		return l
	}
	// two children: splice in the in-order successor
	succParent := root
	succ := root.right
	for succ.left != nil {
		succParent = succ
		succ = succ.left
	}
	if succParent != root {
		succParent.left = succ.right
		succ.right = root.right
	}
	succ.left = root.left
	root.left, root.right = nil, nil
	return succ
}

func (n *Node) activateTree() {
	od := n.obj
	od.snapshot = nil
	od.tree = nil
	for e := od.head; e != nil; e = e.next {
		e.left, e.right = nil, nil
		od.tree = treeInsert(od.tree, e)
	}
	od.kind = indexTree
}

// ObjectFind looks up key using the ordered-tree index (ajsono_find).
// The tree is built lazily on first call, kept up to date by Insert,
// and discarded the moment Get activates the snapshot again (the
// cross-invalidation rule of spec.md §4.5).
func (n *Node) ObjectFind(key string) *Node {
	return n.ObjectFindNode(key).Value()
}

// ObjectFindNode is ObjectFind, returning the entry instead of its
// value.
func (n *Node) ObjectFindNode(key string) *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	od := n.obj
	if od.kind != indexTree {
		n.activateTree()
	}
	return treeFind(od.tree, []byte(key))
}

// ObjectGetNode is ObjectGet, returning the entry instead of its value.
func (n *Node) ObjectGetNode(key string) *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	od := n.obj
	if od.kind != indexSnapshot {
		n.activateSnapshot()
	}
	kb := []byte(key)
	lo, hi := 0, len(od.snapshot)
	for lo < hi {
		mid := (lo + hi) / 2
		c := bytes.Compare(od.snapshot[mid].key, kb)
		if c == 0 {
			return od.snapshot[mid]
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return nil
}

// ObjectInsert appends a new entry and keeps the tree index current if
// it is active (inserting into it); if the snapshot is active instead,
// it is merely invalidated, matching Set's behavior on a miss.
func (n *Node) ObjectInsert(key string, item *Node, copyKey bool) *ObjectEntry {
	item.parent = n
	e := newObjectEntry(n.arena, []byte(key), copyKey, item)
	n.obj.linkTail(e)
	od := n.obj
	switch od.kind {
	case indexTree:
		e.left, e.right = nil, nil
		od.tree = treeInsert(od.tree, e)
	case indexSnapshot:
		od.snapshot = nil
		od.kind = indexNone
	}
	return e
}

// ObjectSet scans for the first entry with key; if found, its value is
// replaced in place (preserving insertion order) and the node's parent
// is rebound, and both indexes are left as they are (the entry and its
// key do not change). If not found, the key/value is appended as by
// ObjectInsert: an active snapshot is invalidated and an active tree
// has the new entry inserted.
func (n *Node) ObjectSet(key string, item *Node, copyKey bool) *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	kb := []byte(key)
	for e := n.obj.head; e != nil; e = e.next {
		if bytes.Equal(e.key, kb) {
			item.parent = n
			e.value = item
			return e
		}
	}
	return n.ObjectInsert(key, item, copyKey)
}

// ObjectScanDup is ObjectScan, returning an arena-owned decoded copy of
// the matched value's text instead of the node itself (ajsono_scan_strd).
func (n *Node) ObjectScanDup(a *Arena, key string) []byte {
	return a.Dup(n.ObjectScan(key).Decoded(a))
}

// ObjectGetDup is ObjectGet's decoded-copy counterpart (ajsono_get_strd).
func (n *Node) ObjectGetDup(a *Arena, key string) []byte {
	return a.Dup(n.ObjectGet(key).Decoded(a))
}

// ObjectFindDup is ObjectFind's decoded-copy counterpart (ajsono_find_strd).
func (n *Node) ObjectFindDup(a *Arena, key string) []byte {
	return a.Dup(n.ObjectFind(key).Decoded(a))
}

// ObjectRemove scans for the first entry with key, unlinks it, and
// drops it from whichever index is active (the snapshot is dropped
// wholesale; the tree erases just that entry).
func (n *Node) ObjectRemove(key string) bool {
	if n == nil || n.tag != TagObject {
		return false
	}
	kb := []byte(key)
	od := n.obj
	for e := od.head; e != nil; e = e.next {
		if bytes.Equal(e.key, kb) {
			od.unlink(e)
			switch od.kind {
			case indexSnapshot:
				od.snapshot = nil
				od.kind = indexNone
			case indexTree:
				od.tree = treeErase(od.tree, kb)
			}
			if e.value != nil {
				e.value.parent = nil
			}
			e.left, e.right = nil, nil
			return true
		}
	}
	return false
}
