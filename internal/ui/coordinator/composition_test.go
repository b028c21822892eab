package coordinator_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/application/port/mocks"
	"github.com/bnema/duopane/internal/application/usecase"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
	"github.com/bnema/duopane/internal/ui/coordinator"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type sentMessage struct {
	name    string
	payload any
}

type fakeSurface struct {
	navigations []string
	bounds      entity.Rect
	boundsSet   int
	transparent bool
	sent        []sentMessage
	firstPaint  func()
	external    func(string)
}

func (s *fakeSurface) Navigate(_ context.Context, uri string) error {
	s.navigations = append(s.navigations, uri)
	return nil
}

func (s *fakeSurface) SetBounds(rect entity.Rect) {
	s.bounds = rect
	s.boundsSet++
}

func (s *fakeSurface) SetTransparentBackground() { s.transparent = true }
func (s *fakeSurface) OnFirstPaint(callback func()) { s.firstPaint = callback }
func (s *fakeSurface) OnExternalNavigation(callback func(uri string)) { s.external = callback }

func (s *fakeSurface) Send(_ context.Context, name string, payload any) error {
	s.sent = append(s.sent, sentMessage{name: name, payload: payload})
	return nil
}

func (s *fakeSurface) messages(name string) []any {
	var out []any
	for _, m := range s.sent {
		if m.name == name {
			out = append(out, m.payload)
		}
	}
	return out
}

func (s *fakeSurface) lastOverlayState(t *testing.T) coordinator.OverlayState {
	t.Helper()
	states := s.messages(coordinator.MessageOverlayLayout)
	require.NotEmpty(t, states)
	return states[len(states)-1].(coordinator.OverlayState)
}

type fakeWindow struct {
	width, height int
	resize        func(int, int)
	shown         int
}

func (w *fakeWindow) Size() (int, int) { return w.width, w.height }
func (w *fakeWindow) OnResize(callback func(width, height int)) { w.resize = callback }
func (w *fakeWindow) Show() { w.shown++ }

func (w *fakeWindow) resizeTo(width, height int) {
	w.width, w.height = width, height
	w.resize(width, height)
}

// memRepo is safe for the store's persister goroutine.
type memRepo struct {
	mu    sync.Mutex
	saved []entity.Settings
}

func (r *memRepo) Load(context.Context) (entity.Settings, error) {
	return entity.DefaultSettings(), nil
}

func (r *memRepo) Save(_ context.Context, s entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, s)
	return nil
}

type harness struct {
	ctx     context.Context
	window  *fakeWindow
	panes   map[entity.Side]*fakeSurface
	overlay *fakeSurface
	opener  *mocks.MockExternalOpener
	repo    *memRepo
	store   *usecase.SettingsStore
	ctrl    *coordinator.CompositionController
	shown   int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := testCtx()

	h := &harness{
		ctx:     ctx,
		window:  &fakeWindow{width: 1000, height: 800},
		panes:   map[entity.Side]*fakeSurface{entity.SideA: {}, entity.SideB: {}},
		overlay: &fakeSurface{},
		opener:  mocks.NewMockExternalOpener(t),
		repo:    &memRepo{},
	}

	factory := mocks.NewMockSurfaceFactory(t)
	for _, side := range entity.Sides() {
		partition := entity.Partition{Side: side, Key: entity.PartitionFor(side)}
		factory.EXPECT().NewContentSurface(mock.Anything, partition).Return(h.panes[side], nil).Once()
	}
	factory.EXPECT().NewOverlaySurface(mock.Anything).Return(h.overlay, nil).Once()

	h.store = usecase.NewSettingsStore(ctx, h.repo)
	t.Cleanup(func() { h.store.Close(ctx) })

	h.ctrl = coordinator.NewCompositionController(ctx, coordinator.CompositionDeps{
		Window:  h.window,
		Factory: factory,
		Opener:  h.opener,
		Store:   h.store,
		OnShown: func() { h.shown++ },
	})
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.ctrl.Start(h.ctx, nil))
}

func bothURLs() entity.Settings {
	s := entity.DefaultSettings()
	s.SideAURL = "https://a.example"
	s.SideBURL = "https://b.example"
	return s
}

func TestComposition_StartPlacesPanesAndOverlay(t *testing.T) {
	h := newHarness(t)
	h.store.Resolve(h.ctx, bothURLs())

	h.start(t)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 497, H: 800}, h.panes[entity.SideA].bounds)
	assert.Equal(t, entity.Rect{X: 503, Y: 0, W: 497, H: 800}, h.panes[entity.SideB].bounds)
	assert.Equal(t, entity.Rect{X: 497, Y: 0, W: 6, H: 800}, h.overlay.bounds)
	assert.True(t, h.overlay.transparent)

	assert.Equal(t, []string{"https://a.example"}, h.panes[entity.SideA].navigations)
	assert.Equal(t, []string{"https://b.example"}, h.panes[entity.SideB].navigations)

	state := h.overlay.lastOverlayState(t)
	assert.True(t, state.Ready)
	assert.Equal(t, 0, state.DividerX)
	assert.Empty(t, state.Configure)
}

func TestComposition_StartTwiceFails(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	assert.Error(t, h.ctrl.Start(h.ctx, nil))
}

func TestComposition_RejectsForeignPartition(t *testing.T) {
	ctx := testCtx()
	store := usecase.NewSettingsStore(ctx, &memRepo{})
	t.Cleanup(func() { store.Close(ctx) })

	ctrl := coordinator.NewCompositionController(ctx, coordinator.CompositionDeps{
		Window:  &fakeWindow{width: 100, height: 100},
		Factory: mocks.NewMockSurfaceFactory(t),
		Store:   store,
	})

	err := ctrl.Start(ctx, map[entity.Side]entity.Partition{
		entity.SideA: {Side: entity.SideA, Key: entity.PartitionFor(entity.SideB)},
	})

	assert.Error(t, err)
}

func TestComposition_SwapMovesRectanglesNotSessions(t *testing.T) {
	h := newHarness(t)
	s := bothURLs()
	s.SplitRatio = 30
	h.store.Resolve(h.ctx, s)
	h.start(t)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 297, H: 800}, h.panes[entity.SideA].bounds)

	s.Swapped = true
	h.store.Commit(h.ctx, s, usecase.SourceEditor)

	// Side A keeps its 30% share but is now drawn on the right.
	assert.Equal(t, entity.Rect{X: 703, Y: 0, W: 297, H: 800}, h.panes[entity.SideA].bounds)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 697, H: 800}, h.panes[entity.SideB].bounds)

	// Each surface keeps its own URL and partition: nothing reloads.
	assert.Len(t, h.panes[entity.SideA].navigations, 1)
	assert.Len(t, h.panes[entity.SideB].navigations, 1)
}

func TestComposition_NavigatesOnlyChangedPanes(t *testing.T) {
	h := newHarness(t)
	s := bothURLs()
	h.store.Resolve(h.ctx, s)
	h.start(t)

	s.SideBURL = "https://other.example"
	h.store.Commit(h.ctx, s, usecase.SourceEditor)

	s.DividerColor = "#ffffff"
	h.store.Commit(h.ctx, s, usecase.SourceEditor)

	assert.Equal(t, []string{"https://a.example"}, h.panes[entity.SideA].navigations)
	assert.Equal(t, []string{"https://b.example", "https://other.example"}, h.panes[entity.SideB].navigations)
}

func TestComposition_EmptyURLLoadsBlankAndWidensOverlay(t *testing.T) {
	h := newHarness(t)
	s := entity.DefaultSettings()
	s.SideBURL = "https://b.example"
	h.store.Resolve(h.ctx, s)

	h.start(t)

	assert.Equal(t, []string{port.BlankURL}, h.panes[entity.SideA].navigations)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 503, H: 800}, h.overlay.bounds)

	state := h.overlay.lastOverlayState(t)
	require.Len(t, state.Configure, 1)
	assert.Equal(t, "a", state.Configure[0].Side)
	assert.Equal(t, 497, state.DividerX)
}

func TestComposition_WaitsForLoadBeforeNavigating(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	assert.Empty(t, h.panes[entity.SideA].navigations)
	assert.Empty(t, h.panes[entity.SideB].navigations)
	assert.False(t, h.overlay.lastOverlayState(t).Ready)

	h.store.Resolve(h.ctx, bothURLs())

	assert.Equal(t, []string{"https://a.example"}, h.panes[entity.SideA].navigations)
	assert.True(t, h.overlay.lastOverlayState(t).Ready)
}

func TestComposition_ShowsWindowAfterOverlayFirstPaint(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	assert.Equal(t, 0, h.window.shown)
	assert.False(t, h.ctrl.Shown())

	require.NotNil(t, h.overlay.firstPaint)
	h.overlay.firstPaint()
	h.overlay.firstPaint()

	assert.Equal(t, 1, h.window.shown)
	assert.Equal(t, 1, h.shown)
	assert.True(t, h.ctrl.Shown())
}

func TestComposition_FirstPaintResendsOverlayLayout(t *testing.T) {
	h := newHarness(t)
	h.store.Resolve(h.ctx, bothURLs())
	h.start(t)

	before := len(h.overlay.messages(coordinator.MessageOverlayLayout))
	h.overlay.firstPaint()

	assert.Len(t, h.overlay.messages(coordinator.MessageOverlayLayout), before+1)
	state := h.overlay.lastOverlayState(t)
	assert.True(t, state.Ready)
	assert.Equal(t, 1000, state.WindowWidth)
}

func TestComposition_RelayoutOnResize(t *testing.T) {
	h := newHarness(t)
	h.store.Resolve(h.ctx, bothURLs())
	h.start(t)

	h.window.resizeTo(2000, 600)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 997, H: 600}, h.panes[entity.SideA].bounds)
	assert.Equal(t, entity.Rect{X: 1003, Y: 0, W: 997, H: 600}, h.panes[entity.SideB].bounds)

	layout, ok := h.ctrl.CurrentLayout()
	require.True(t, ok)
	assert.Equal(t, 2000, layout.Window.W)
}

func TestComposition_NewWindowLinksOpenExternally(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.opener.EXPECT().Open(mock.Anything, "https://popup.example").Return(nil).Once()

	require.NotNil(t, h.panes[entity.SideB].external)
	h.panes[entity.SideB].external("https://popup.example")

	assert.Empty(t, h.panes[entity.SideB].navigations)
}

func TestComposition_BroadcastsCommittedChangesOnly(t *testing.T) {
	h := newHarness(t)
	h.store.Resolve(h.ctx, bothURLs())
	h.start(t)

	editor := &fakeSurface{}
	remove := h.ctrl.AddBroadcastTarget(editor)

	before := len(h.overlay.messages(coordinator.MessageSettingsChanged))

	// A drag preview re-lays out without broadcasting.
	_, ok := h.store.PreviewSplitRatio(h.ctx, 60)
	require.True(t, ok)
	assert.Len(t, h.overlay.messages(coordinator.MessageSettingsChanged), before)
	assert.Empty(t, editor.messages(coordinator.MessageSettingsChanged))
	assert.Equal(t, 597, h.panes[entity.SideA].bounds.W)

	next := h.store.Current()
	h.store.Commit(h.ctx, next, usecase.SourceDrag)
	next.DividerColor = "#111111"
	h.store.Commit(h.ctx, next, usecase.SourceEditor)

	got := editor.messages(coordinator.MessageSettingsChanged)
	require.NotEmpty(t, got)
	assert.Equal(t, next, got[len(got)-1])
	assert.Greater(t, len(h.overlay.messages(coordinator.MessageSettingsChanged)), before)

	remove()
	count := len(editor.sent)
	next.Swapped = true
	h.store.Commit(h.ctx, next, usecase.SourceEditor)
	assert.Len(t, editor.sent, count)
}

func TestComposition_StopDetachesFromStore(t *testing.T) {
	h := newHarness(t)
	h.store.Resolve(h.ctx, bothURLs())
	h.start(t)

	h.ctrl.Stop()
	s := h.store.Current()
	s.SideAURL = "https://changed.example"
	h.store.Commit(h.ctx, s, usecase.SourceEditor)

	assert.Len(t, h.panes[entity.SideA].navigations, 1)
}
