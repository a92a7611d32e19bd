// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"regexp"
	"strings"

	"github.com/netapp/dataops/pkg/capacity"
	"github.com/netapp/dataops/pkg/convert"
	"github.com/netapp/dataops/utils/errors"
)

var unixPermissionsRegex = regexp.MustCompile(`^0[0-7]{3}$`)

// ValidateUnixPermissions accepts four-digit octal modes with a leading zero, e.g. "0755".
func ValidateUnixPermissions(permissions string) error {
	if !unixPermissionsRegex.MatchString(permissions) {
		return errors.InvalidVolumeParameterError(
			"invalid unix permissions '%s'; value must be a four-digit octal number starting with 0", permissions)
	}
	return nil
}

// ParseVolumeSize wraps capacity.ParseSize in the volume parameter error kind.
func ParseVolumeSize(size string) (uint64, error) {
	bytes, err := capacity.ParseSize(size)
	if err != nil {
		return 0, errors.InvalidVolumeParameterError(err.Error())
	}
	return bytes, nil
}

// Validate checks the fields every backend needs, parsing Size into SizeBytes. It makes no
// remote calls.
func (s *VolumeSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.InvalidVolumeParameterError("volume name is mandatory")
	}
	if s.Size != "" {
		bytes, err := ParseVolumeSize(s.Size)
		if err != nil {
			return err
		}
		s.SizeBytes = bytes
	}
	if s.SizeBytes == 0 && s.ClonedFrom == nil {
		return errors.InvalidVolumeParameterError("volume size is mandatory")
	}
	if s.UnixPermissions != "" {
		if err := ValidateUnixPermissions(s.UnixPermissions); err != nil {
			return err
		}
	}
	for _, id := range []struct{ name, value string }{{"unix UID", s.UnixUID}, {"unix GID", s.UnixGID}} {
		if id.value == "" {
			continue
		}
		if _, err := convert.ToPositiveInt(id.value); err != nil {
			return errors.InvalidVolumeParameterError("invalid %s '%s'; %v", id.name, id.value, err)
		}
	}
	if s.ClonedFrom != nil && s.ClonedFrom.SourceVolume == "" {
		return errors.InvalidVolumeParameterError("clone source volume is mandatory")
	}
	return nil
}
