// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of sticky-canvas: the note board
// with its active, archived and trash views, the text note form, the canvas
// editor and the settings screen.
//
// The UI never mutates notes itself. Every change goes through the note
// store in commands, and screens re-render from the store's views.
package tui

import (
	"context"

	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.Services
	canvas   config.ClientCanvas
	logger   *logger.Logger
}

func New(services *service.Services, canvasCfg config.ClientCanvas, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, canvas: canvasCfg, logger: log}, nil
}

// Run shows the board until the user quits or ctx is canceled. A
// cancellation is a normal shutdown and is not reported as an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.canvas, t.logger)
	_, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
