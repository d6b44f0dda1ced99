/*
Package ajson is an arena-backed JSON document engine.

In contrast to encoding/json, ajson is centered around a tree of tagged
nodes built in place over a writable buffer. Parsing is destructive (it
writes a single NUL at the end of each scalar token) and single pass.
Objects keep insertion order and expose two lazily built, mutually
exclusive lookup indexes (a sorted snapshot and an ordered tree); arrays
keep a lazily built direct-access table.

Nothing is freed node by node: all nodes, keys and duplicated strings
live in an Arena and die together when the arena is discarded.
*/
package ajson
