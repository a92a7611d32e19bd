// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package capacity converts between the toolkit's human-readable size strings and bytes.
package capacity

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dustin/go-humanize"
)

const (
	OneMiB = uint64(1 << 20)
	OneGiB = uint64(1 << 30)
	OneTiB = uint64(1 << 40)
)

var sizeRegex = regexp.MustCompile(`^([0-9]+)(MB|GB|TB)$`)

var unitMultipliers = map[string]uint64{
	"MB": OneMiB,
	"GB": OneGiB,
	"TB": OneTiB,
}

// ParseSize converts a size string of the form <int>MB|GB|TB into bytes. Units are binary,
// so "1GB" is 1024^3 bytes.
func ParseSize(size string) (uint64, error) {
	match := sizeRegex.FindStringSubmatch(size)
	if match == nil {
		return 0, fmt.Errorf("invalid size '%s'; acceptable format is <int>MB, <int>GB or <int>TB", size)
	}

	value, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size '%s'; %v", size, err)
	}

	multiplier := unitMultipliers[match[2]]
	if value > ^uint64(0)/multiplier {
		return 0, fmt.Errorf("invalid size '%s'; value overflows", size)
	}

	return value * multiplier, nil
}

// BytesToGiB rounds up to whole gibibytes, as required by APIs that size volumes in GiB.
func BytesToGiB(bytes uint64) int64 {
	gib := bytes / OneGiB
	if bytes%OneGiB != 0 {
		gib++
	}
	return int64(gib)
}

// GiBToBytes converts gibibytes to bytes.
func GiBToBytes(gib int64) uint64 {
	if gib < 0 {
		return 0
	}
	return uint64(gib) * OneGiB
}

// Format renders bytes for display, e.g. "10 GiB".
func Format(bytes uint64) string {
	return humanize.IBytes(bytes)
}
