// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/netapp/dataops/storage"
)

type MultipleVolumeResponse struct {
	Items []*storage.Volume `json:"items"`
}

type MultipleSnapshotResponse struct {
	Items []*storage.Snapshot `json:"items"`
}

type MultipleRelationshipResponse struct {
	Items []*storage.Relationship `json:"items"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func WriteVolumes(w io.Writer, volumes []*storage.Volume) {
	if volumes == nil {
		volumes = []*storage.Volume{}
	}
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(w, MultipleVolumeResponse{volumes})
	case FormatYAML:
		WriteYAML(w, MultipleVolumeResponse{volumes})
	case FormatName:
		for _, volume := range volumes {
			_, _ = fmt.Fprintln(w, volume.Name)
		}
	default:
		writeVolumeTable(w, volumes)
	}
}

func writeVolumeTable(w io.Writer, volumes []*storage.Volume) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Size", "Type", "Phase", "Clone", "Source Volume", "Source Snapshot", "Mount Target"})

	for _, volume := range volumes {
		var sourceVolume, sourceSnapshot, mountTarget string
		if volume.ClonedFrom != nil {
			sourceVolume = volume.ClonedFrom.SourceVolume
			sourceSnapshot = volume.ClonedFrom.SourceSnapshot
		}
		if volume.MountTarget != nil {
			mountTarget = volume.MountTarget.String()
		}
		table.Append([]string{
			volume.Name,
			humanize.IBytes(volume.SizeBytes),
			volume.Type,
			string(volume.Phase),
			yesNo(volume.IsClone()),
			sourceVolume,
			sourceSnapshot,
			mountTarget,
		})
	}

	table.Render()
}

func WriteSnapshots(w io.Writer, snapshots []*storage.Snapshot) {
	if snapshots == nil {
		snapshots = []*storage.Snapshot{}
	}
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(w, MultipleSnapshotResponse{snapshots})
	case FormatYAML:
		WriteYAML(w, MultipleSnapshotResponse{snapshots})
	case FormatName:
		for _, snapshot := range snapshots {
			_, _ = fmt.Fprintln(w, snapshot.Name)
		}
	default:
		writeSnapshotTable(w, snapshots)
	}
}

func writeSnapshotTable(w io.Writer, snapshots []*storage.Snapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Volume", "Created", "Phase", "SnapMirror Label"})

	for _, snapshot := range snapshots {
		created := ""
		if !snapshot.Created.IsZero() {
			created = snapshot.Created.Format("2006-01-02 15:04:05") + " (" + humanize.Time(snapshot.Created) + ")"
		}
		table.Append([]string{
			snapshot.Name,
			snapshot.Volume,
			created,
			string(snapshot.Phase),
			snapshot.Label,
		})
	}

	table.Render()
}

func WriteRelationships(w io.Writer, relationships []*storage.Relationship) {
	if relationships == nil {
		relationships = []*storage.Relationship{}
	}
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(w, MultipleRelationshipResponse{relationships})
	case FormatYAML:
		WriteYAML(w, MultipleRelationshipResponse{relationships})
	case FormatName:
		for _, relationship := range relationships {
			_, _ = fmt.Fprintln(w, relationship.ID)
		}
	default:
		writeRelationshipTable(w, relationships)
	}
}

func writeRelationshipTable(w io.Writer, relationships []*storage.Relationship) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"UUID", "Source", "Destination", "Healthy", "State", "Policy", "Schedule"})

	for _, relationship := range relationships {
		table.Append([]string{
			relationship.ID,
			relationship.Source.String(),
			relationship.Destination.String(),
			strconv.FormatBool(relationship.Healthy),
			string(relationship.State),
			relationship.Policy,
			relationship.Schedule,
		})
	}

	table.Render()
}

// WriteStatus reports the outcome of an operation that returns no object.
func WriteStatus(w io.Writer, message string) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(w, StatusResponse{Status: "success", Message: message})
	case FormatYAML:
		WriteYAML(w, StatusResponse{Status: "success", Message: message})
	default:
		_, _ = fmt.Fprintln(w, message)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
