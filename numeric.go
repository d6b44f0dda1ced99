package ajson

import (
	"strconv"
	"strings"
)

// This file implements the numeric/boolean conversion contract that
// spec.md §6 treats as an external collaborator. A third-party
// conversion helper (the examples pull in things like spf13/cast for
// this) was considered, but none of the libraries in the retrieval pack
// implement this exact "whole string or default, 0/1/yes/no aware"
// contract, so it is hand-rolled against strconv directly: this is a
// thin, boundary-only adapter, not a component worth a dependency.

// TryToInt parses s as a base-10 integer. Surrounding whitespace is
// trimmed first; the rest of the string must match in full. On overflow
// or malformed input it returns (0, false).
func TryToInt(s string) (int, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ToInt is TryToInt with a default on failure.
func ToInt(s string, def int) int {
	if n, ok := TryToInt(s); ok {
		return n
	}
	return def
}

// TryToInt32 is the int32 variant of TryToInt.
func TryToInt32(s string) (int32, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ToInt32 is TryToInt32 with a default on failure.
func ToInt32(s string, def int32) int32 {
	if n, ok := TryToInt32(s); ok {
		return n
	}
	return def
}

// TryToUint32 is the uint32 variant of TryToInt.
func TryToUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// ToUint32 is TryToUint32 with a default on failure.
func ToUint32(s string, def uint32) uint32 {
	if n, ok := TryToUint32(s); ok {
		return n
	}
	return def
}

// TryToInt64 is the int64 variant of TryToInt.
func TryToInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToInt64 is TryToInt64 with a default on failure.
func ToInt64(s string, def int64) int64 {
	if n, ok := TryToInt64(s); ok {
		return n
	}
	return def
}

// TryToUint64 is the uint64 variant of TryToInt.
func TryToUint64(s string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToUint64 is TryToUint64 with a default on failure.
func ToUint64(s string, def uint64) uint64 {
	if n, ok := TryToUint64(s); ok {
		return n
	}
	return def
}

// TryToFloat parses s as a float32. Surrounding whitespace is trimmed
// first; the rest of the string must match in full.
func TryToFloat(s string) (float32, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false
	}
	return float32(n), true
}

// ToFloat is TryToFloat with a default on failure.
func ToFloat(s string, def float32) float32 {
	if n, ok := TryToFloat(s); ok {
		return n
	}
	return def
}

// TryToDouble parses s as a float64. Surrounding whitespace is trimmed
// first; the rest of the string must match in full.
func TryToDouble(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToDouble is TryToDouble with a default on failure.
func ToDouble(s string, def float64) float64 {
	if n, ok := TryToDouble(s); ok {
		return n
	}
	return def
}

// TryToLong is an alias of TryToInt64, named to match the external
// try_to_long contract.
func TryToLong(s string) (int64, bool) { return TryToInt64(s) }

// ToLong is an alias of ToInt64.
func ToLong(s string, def int64) int64 { return ToInt64(s, def) }

// TryToBool accepts the case-insensitive textual forms "true"/"false"/
// "yes"/"no"/"0"/"1". "0" is always false regardless of any default;
// any non-empty, non-matching string fails (returns false, false).
func TryToBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}

// ToBool is TryToBool with a default: unmatched non-empty strings fall
// back to def, matching the external to_bool contract (try_to_bool
// instead falls back to false on a miss, see TryToBool above).
func ToBool(s string, def bool) bool {
	if v, ok := TryToBool(s); ok {
		return v
	}
	return def
}
