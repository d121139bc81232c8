// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/sticky-canvas/internal/adapter"
	"github.com/MKhiriev/sticky-canvas/internal/lifecycle"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/internal/utils"
	"github.com/MKhiriev/sticky-canvas/internal/validators"
	"github.com/MKhiriev/sticky-canvas/models"
)

// Option configures the note service.
type Option func(*noteService)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *noteService) { s.clock = c }
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *noteService) { s.ids = g }
}

// WithValidator replaces the note validator.
func WithValidator(v validators.Validator) Option {
	return func(s *noteService) { s.validator = v }
}

// WithWelcomeNotes controls first-run seeding. It is on by default.
func WithWelcomeNotes(enabled bool) Option {
	return func(s *noteService) { s.seedWelcome = enabled }
}

// WithTrashRetention sets how long a trashed note is kept before
// PurgeExpired removes it. Zero keeps trashed notes forever.
func WithTrashRetention(d time.Duration) Option {
	return func(s *noteService) { s.retention = d }
}

type noteService struct {
	mu    sync.RWMutex
	notes []models.Note

	persistence store.NotePersistence
	summarizer  adapter.Summarizer
	validator   validators.Validator
	clock       Clock
	ids         IDGenerator

	seedWelcome bool
	retention   time.Duration

	// loaded is set once the stored snapshot has been read. Mutations
	// before that load it first so they never save over stored notes.
	loaded bool

	logger *logger.Logger
}

func NewNoteService(persistence store.NotePersistence, summarizer adapter.Summarizer, log *logger.Logger, opts ...Option) NoteService {
	s := &noteService{
		notes:       []models.Note{},
		persistence: persistence,
		summarizer:  summarizer,
		validator:   validators.NewNoteValidator(),
		clock:       utils.NewSystemClock(),
		ids:         utils.NewUUIDGenerator(),
		seedWelcome: true,
		logger:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.summarizer == nil {
		s.summarizer = adapter.NewDisabledSummarizer()
	}
	return s
}

func (s *noteService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx)
}

// ensureLoaded reads the snapshot if nothing has been loaded yet. The caller
// holds s.mu.
func (s *noteService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.logger.Debug().Str("func", "noteService.ensureLoaded").Msg("collection changed before load, loading snapshot first")
	s.load(ctx)
}

// load replaces the collection with the stored snapshot. The caller holds
// s.mu.
func (s *noteService) load(ctx context.Context) {
	res := s.persistence.Load(ctx)
	s.loaded = true

	if !res.Found && s.seedWelcome {
		s.notes = welcomeNotes(s.clock.Now(), s.ids)
		s.persist(ctx)
		s.logger.Info().Int("notes", len(s.notes)).Msg("first run, welcome notes created")
		return
	}

	s.notes = res.Notes
	if s.notes == nil {
		s.notes = []models.Note{}
	}

	for _, n := range s.notes {
		if err := s.validator.Validate(ctx, n); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "noteService.Load").
				Str("id", n.ID).
				Msg("stored note does not pass validation")
		}
	}
	s.logger.Info().Int("notes", len(s.notes)).Msg("notes loaded")
}

func (s *noteService) Create(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	log := logger.FromContext(ctx)

	if draft.Type == "" {
		draft.Type = models.TextNote
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		log.Err(err).Str("func", "noteService.Create").Msg("invalid note draft")
		return models.Note{}, err
	}

	now := s.clock.Now()
	note := models.Note{
		ID:         s.ids.Generate(),
		Title:      draft.Title,
		Content:    draft.Content,
		Type:       draft.Type,
		CanvasData: draft.CanvasData,
		Color:      cmp.Or(strings.TrimSpace(draft.Color), models.DefaultNoteColor),
		Tags:       slices.Clone(draft.Tags),
		ImageURL:   draft.ImageURL,
		DataAIHint: draft.DataAIHint,
		Status:     models.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if note.Tags == nil {
		note.Tags = []models.Tag{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	s.notes = slices.Insert(s.notes, 0, note)
	s.persist(ctx)

	log.Debug().Str("func", "noteService.Create").Str("id", note.ID).Msg("note created")
	return note.Clone(), nil
}

func (s *noteService) Update(ctx context.Context, id string, upd models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	cur := s.notes[i]
	if err := lifecycle.CanEdit(cur); err != nil {
		return models.Note{}, err
	}

	next := applyUpdate(cur.Clone(), upd)
	next.UpdatedAt = s.nextUpdatedAt(cur.UpdatedAt)

	if err := s.validateUpdate(ctx, next, upd); err != nil {
		log.Err(err).Str("func", "noteService.Update").Str("id", id).Msg("update rejected")
		return models.Note{}, err
	}

	s.notes[i] = next
	s.persist(ctx)

	return next.Clone(), nil
}

func (s *noteService) Transition(ctx context.Context, id string, action models.LifecycleAction) (*models.Note, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	cur := s.notes[i]
	out, removed, err := lifecycle.Apply(cur, action, s.nextUpdatedAt(cur.UpdatedAt))
	if err != nil {
		log.Err(err).
			Str("func", "noteService.Transition").
			Str("id", id).
			Str("action", string(action)).
			Msg("transition rejected")
		return nil, err
	}

	if removed {
		s.notes = slices.Delete(s.notes, i, i+1)
		s.persist(ctx)
		log.Debug().Str("func", "noteService.Transition").Str("id", id).Msg("note deleted permanently")
		return nil, nil
	}

	s.notes[i] = out
	s.persist(ctx)

	res := out.Clone()
	return &res, nil
}

func (s *noteService) List(_ context.Context, filter models.NoteFilter) iter.Seq[models.Note] {
	s.mu.RLock()
	snapshot := models.CloneNotes(s.notes)
	s.mu.RUnlock()

	return func(yield func(models.Note) bool) {
		for _, n := range snapshot {
			if !matchesFilter(n, filter) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func (s *noteService) Get(_ context.Context, id string) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return s.notes[i].Clone(), nil
}

func (s *noteService) Active(context.Context) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lifecycle.ActiveView(s.notes)
}

func (s *noteService) Archived(context.Context) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lifecycle.ArchivedView(s.notes)
}

func (s *noteService) Trashed(context.Context) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lifecycle.TrashedView(s.notes)
}

func (s *noteService) Tags(context.Context) []models.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var tags []models.Tag
	for _, n := range s.notes {
		for _, t := range n.Tags {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			tags = append(tags, t)
		}
	}

	slices.SortFunc(tags, func(a, b models.Tag) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return tags
}

func (s *noteService) Summarize(ctx context.Context, id string) (<-chan error, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.Type != models.TextNote {
		return nil, ErrNotSummarizable
	}
	if err = lifecycle.CanEdit(note); err != nil {
		return nil, err
	}

	text := summaryInput(note)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	log := logger.FromContext(ctx)
	out := make(chan error, 1)

	go func() {
		defer close(out)

		resp, err := s.summarizer.Summarize(ctx, text)
		if err != nil {
			log.Err(err).Str("func", "noteService.Summarize").Str("id", id).Msg("summarization failed")
			out <- err
			return
		}

		_, err = s.Update(ctx, id, models.NoteUpdate{Summary: &resp.Summary})
		if errors.Is(err, ErrNoteNotFound) {
			log.Debug().Str("func", "noteService.Summarize").Str("id", id).Msg("note deleted before summary arrived, result discarded")
			out <- nil
			return
		}
		out <- err
	}()

	return out, nil
}

func (s *noteService) PurgeExpired(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	before := len(s.notes)
	s.notes = slices.DeleteFunc(s.notes, func(n models.Note) bool {
		return lifecycle.Expired(n, s.retention, now)
	})

	removed := before - len(s.notes)
	if removed > 0 {
		s.persist(ctx)
	}
	return removed
}

// persist hands a copy of the collection to the persistence adapter. The
// caller holds s.mu.
func (s *noteService) persist(ctx context.Context) {
	s.persistence.Save(ctx, models.CloneNotes(s.notes))
}

func (s *noteService) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

// nextUpdatedAt returns the current time, or a moment just after prev when
// the clock has not moved past it.
func (s *noteService) nextUpdatedAt(prev time.Time) time.Time {
	now := s.clock.Now()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}

// validateUpdate checks the rules covering the fields upd touches, so a
// stored note that already breaks an unrelated rule can still be edited.
func (s *noteService) validateUpdate(ctx context.Context, next models.Note, upd models.NoteUpdate) error {
	var fields []string
	if upd.Color != nil {
		fields = append(fields, validators.FieldColor)
	}
	if upd.Tags != nil {
		fields = append(fields, validators.FieldTags)
	}
	if upd.Content != nil || upd.CanvasData != nil || upd.ImageURL != nil || upd.DataAIHint != nil {
		fields = append(fields, validators.FieldPayload)
	}
	if len(fields) == 0 {
		return nil
	}
	return s.validator.Validate(ctx, next, fields...)
}

func applyUpdate(n models.Note, u models.NoteUpdate) models.Note {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.CanvasData != nil {
		n.CanvasData = *u.CanvasData
	}
	if u.Color != nil {
		n.Color = *u.Color
	}
	if u.Tags != nil {
		n.Tags = slices.Clone(*u.Tags)
		if n.Tags == nil {
			n.Tags = []models.Tag{}
		}
	}
	if u.IsPinned != nil {
		n.IsPinned = *u.IsPinned
	}
	if u.ImageURL != nil {
		n.ImageURL = *u.ImageURL
	}
	if u.DataAIHint != nil {
		n.DataAIHint = *u.DataAIHint
	}
	if u.Summary != nil {
		n.Summary = *u.Summary
	}
	return n
}

// summaryInput is the text sent for summarization: the title, a blank line
// and the content, or the content alone for untitled notes.
func summaryInput(n models.Note) string {
	if n.Title != "" {
		return n.Title + "\n\n" + n.Content
	}
	return n.Content
}
