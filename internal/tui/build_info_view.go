// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/sticky-canvas/models"
)

// infoModel is the settings screen: build metadata plus the runtime
// storage and summarization setup.
type infoModel struct {
	build         models.AppBuildInfo
	storage       string
	summarization bool
}

func (m infoModel) View() string {
	var b strings.Builder

	b.WriteString("Application: Sticky Canvas\n")
	b.WriteString("Version: ")
	b.WriteString(m.build.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(m.build.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(m.build.BuildCommit())
	b.WriteString("\n\n")
	b.WriteString("Storage: ")
	b.WriteString(valueOrDash(m.storage))
	b.WriteString("\n")
	b.WriteString("Summarization: ")
	if m.summarization {
		b.WriteString("enabled")
	} else {
		b.WriteString("disabled")
	}

	return renderPage("SETTINGS", b.String(), "esc: back")
}
