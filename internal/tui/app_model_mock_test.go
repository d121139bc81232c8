package tui

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sticky-canvas/internal/app"
	"github.com/MKhiriev/sticky-canvas/internal/lifecycle"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/mock"
	"github.com/MKhiriev/sticky-canvas/internal/service"
	"github.com/MKhiriev/sticky-canvas/models"
	tea "github.com/charmbracelet/bubbletea"
)

func TestApp_MockedServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mock.NewMockNoteService(ctrl)
	info := mock.NewMockAppInfoService(ctrl)

	listed := []models.Note{{
		ID:     "n1",
		Title:  "From the store",
		Type:   models.TextNote,
		Status: models.StatusActive,
		Color:  models.DefaultNoteColor,
	}}
	notes.EXPECT().List(gomock.Any(), gomock.Any()).Return(slices.Values(listed)).AnyTimes()
	notes.EXPECT().Transition(gomock.Any(), "n1", models.ActionArchive).Return(nil, lifecycle.ErrInvalidTransition)

	info.EXPECT().BuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("9.9.9", "", ""))
	info.EXPECT().StorageDescription(gomock.Any()).Return("sqlite (notes.db)")
	info.EXPECT().SummarizationEnabled(gomock.Any()).Return(true)

	services := &service.Services{NoteService: notes, AppInfoService: info}
	b := &testBoard{m: newAppModel(context.Background(), services, testCanvas, logger.Nop())}
	b.exec(t, b.m.Init())
	assert.Equal(t, []string{"From the store"}, b.titles())

	b.press(t, runes("a"))
	require.True(t, b.m.showError)
	assert.Equal(t, app.MsgInvalidTransition, b.m.errorOverlay.message)
	b.press(t, keyOf(tea.KeyEsc))
	assert.False(t, b.m.showError)

	b.press(t, runes("v"))
	require.Equal(t, screenInfo, b.m.currentScreen)
	view := b.m.View()
	assert.Contains(t, view, "9.9.9")
	assert.Contains(t, view, "sqlite (notes.db)")
	assert.Contains(t, view, "enabled")
}
