package ajson

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffCompact renders a human-readable inline diff (insertions and
// deletions marked with ANSI colors) between the compact dumps of two
// trees, for tooling built on top of the engine
// (cmd/ajsonfmt -diff). Grounded in the retrieval pack's
// signadot/tony-format and grafana/loki, which both keep diff/patch
// helpers alongside their document engines.
func DiffCompact(a *Arena, want, got *Node) string {
	wantText := string(DumpCompactToMemory(a, want))
	gotText := string(DumpCompactToMemory(a, got))
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(wantText, gotText, false)
	return dmp.DiffPrettyText(diffs)
}
