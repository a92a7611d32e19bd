// Copyright 2025 NetApp, Inc. All Rights Reserved.

package frontend

// Plugin is a long-running surface started alongside the toolkit, such as the metrics endpoint.
type Plugin interface {
	Activate() error
	Deactivate() error
	GetName() string
	Version() string
}
