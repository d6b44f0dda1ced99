package ajson

import "testing"

func buildArray(a *Arena, vals ...int64) *Node {
	arr := NewArray(a)
	for _, v := range vals {
		arr.ArrayAppend(NewNumberFromInt(a, v))
	}
	return arr
}

func TestArrayCount(t *testing.T) {
	a := NewArena()
	arr := buildArray(a, 1, 2, 3)
	if arr.Count() != 3 {
		t.Errorf("Count = %d, want 3", arr.Count())
	}
}

func TestArrayNthOutOfRange(t *testing.T) {
	a := NewArena()
	arr := buildArray(a, 1, 2, 3)
	if arr.ArrayNth(3) != nil {
		t.Error("ArrayNth past the end should return nil")
	}
	if arr.ArrayNth(-1) != nil {
		t.Error("ArrayNth with a negative index should return nil")
	}
	if got := arr.ArrayNth(1).ToInt(-1); got != 2 {
		t.Errorf("ArrayNth(1) = %d, want 2", got)
	}
}

func TestArrayScanIndexAgreesWithNth(t *testing.T) {
	a := NewArena()
	arr := buildArray(a, 10, 20, 30, 40, 50)
	for i := 0; i < 5; i++ {
		want := arr.ArrayNth(i).ToInt(-1)
		got := arr.ArrayScanIndex(i).ToInt(-1)
		if got != want {
			t.Errorf("ArrayScanIndex(%d) = %d, want %d (ArrayNth)", i, got, want)
		}
	}
	if arr.ArrayScanIndex(5) != nil {
		t.Error("ArrayScanIndex past the end should return nil")
	}
	if arr.ArrayScanIndex(-1) != nil {
		t.Error("ArrayScanIndex with a negative index should return nil")
	}
}

func TestArrayEraseInvalidatesTable(t *testing.T) {
	a := NewArena()
	arr := buildArray(a, 1, 2, 3)
	mid := arr.ArrayNthNode(1)
	v := mid.Value()
	arr.ArrayErase(mid)
	if arr.Count() != 2 {
		t.Errorf("Count after Erase = %d, want 2", arr.Count())
	}
	if v.Parent() != nil {
		t.Error("erased value's parent link should be cleared")
	}
	if got := arr.ArrayNth(1).ToInt(-1); got != 3 {
		t.Errorf("ArrayNth(1) after erasing index 1 = %d, want 3 (stale table must be rebuilt)", got)
	}
}

func TestArrayClear(t *testing.T) {
	a := NewArena()
	arr := buildArray(a, 1, 2, 3)
	first := arr.ArrayFirst().Value()
	arr.ArrayClear()
	if arr.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", arr.Count())
	}
	if arr.ArrayFirst() != nil || arr.ArrayLast() != nil {
		t.Error("Clear should empty head and tail")
	}
	if first.Parent() != nil {
		t.Error("Clear should orphan every element's parent link")
	}
}

func TestArrayAppendOrderAndParent(t *testing.T) {
	a := NewArena()
	arr := NewArray(a)
	v1 := NewNumberFromInt(a, 1)
	arr.ArrayAppend(v1)
	if v1.Parent() != arr {
		t.Error("ArrayAppend should set the value's parent to the array")
	}
}
