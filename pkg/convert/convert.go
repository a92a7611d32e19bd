// Copyright 2025 NetApp, Inc. All Rights Reserved.

package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToPtr converts any value into a pointer to that value.
func ToPtr[T any](v T) *T {
	return &v
}

// PtrToString converts any value into its string representation, or nil
func PtrToString[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *v)
}

// Deref returns the value v points to, or the zero value when v is nil.
func Deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// ToBool wraps strconv.ParseBool to suppress errors. Returns false if strconv.ParseBool would return an error.
func ToBool(b string) bool {
	v, _ := strconv.ParseBool(b)
	return v
}

// ToYesNo renders a boolean the way list output shows it.
func ToYesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ToPositiveInt parses a non-negative integer that fits in an int32, as used for unix UIDs and GIDs.
func ToPositiveInt(s string) (int, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of range [0, %d]", i, math.MaxInt32)
	}
	return int(i), nil
}

// TruncateString returns s limited to maxLength characters.
func TruncateString(s string, maxLength int) string {
	if maxLength < 0 {
		return ""
	}
	if len(s) > maxLength {
		return s[:maxLength]
	}
	return s
}
