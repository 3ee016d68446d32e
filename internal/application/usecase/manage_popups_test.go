package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/application/port/mocks"
	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/infrastructure/container"
	"github.com/bnema/navkit/internal/ui/dispatcher"
	"github.com/bnema/navkit/internal/ui/tui"
)

func TestPresentAndDismiss(t *testing.T) {
	h := newHarness(t)

	res := h.popups.Present(h.ctx, "ConfirmPopup?question=sure", nil)

	require.True(t, res.IsSuccess, res.ErrorMessage)
	assert.True(t, h.popups.IsActive("ConfirmPopup"))
	assert.Equal(t, []string{"ConfirmPopup"}, h.popups.ActiveNames())
	assert.Equal(t, "sure", lastVM[*ConfirmViewModel](t, h, "ConfirmPopup").Question)
	assert.Len(t, h.window.Popups().Stack(), 1)

	require.True(t, h.popups.Dismiss(h.ctx, "ConfirmPopup").IsSuccess)
	assert.False(t, h.popups.IsActive("ConfirmPopup"))
	assert.Empty(t, h.window.Popups().Stack())

	assert.Equal(t, entity.ErrorCodeInvalidState, h.popups.Dismiss(h.ctx, "ConfirmPopup").ErrorCode)
}

func TestPresent_Failures(t *testing.T) {
	tests := []struct {
		name  string
		popup string
	}{
		{"empty", ""},
		{"unknown", "NopePopup"},
		{"page is not a popup", "HomePage"},
		{"two segments", "ConfirmPopup/ConfirmPopup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			res := h.popups.Present(h.ctx, tt.popup, nil)

			assert.Equal(t, entity.ErrorCodeGeneral, res.ErrorCode, res.ErrorMessage)
			assert.Empty(t, h.popups.ActiveNames())
			assert.Empty(t, h.window.Popups().Stack())
		})
	}
}

func TestPresent_AmbiguousName(t *testing.T) {
	h := newHarness(t)
	h.catalog.Add(popupType("confirmpopup"))
	h.resolver.SetNamePolicy(usecase.NameCaseInsensitive)

	res := h.popups.Present(h.ctx, "ConfirmPopup", nil)

	assert.Equal(t, entity.ErrorCodeGeneral, res.ErrorCode)
}

func TestPresent_CaseInsensitiveUsesCanonicalName(t *testing.T) {
	h := newHarness(t)
	h.resolver.SetNamePolicy(usecase.NameCaseInsensitive)

	require.True(t, h.popups.Present(h.ctx, "confirmpopup", nil).IsSuccess)

	assert.Equal(t, []string{"ConfirmPopup"}, h.popups.ActiveNames())
	assert.True(t, h.popups.IsActive("CONFIRMPOPUP"))
	assert.True(t, h.popups.Dismiss(h.ctx, "CONFIRMPOPUP").IsSuccess)
}

func TestPresent_SameNameTwiceKeepsLatest(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.popups.Present(h.ctx, "ConfirmPopup", nil).IsSuccess)
	require.True(t, h.popups.Present(h.ctx, "ConfirmPopup", nil).IsSuccess)
	stack := h.window.Popups().Stack()
	require.Len(t, stack, 2)

	require.True(t, h.popups.Dismiss(h.ctx, "ConfirmPopup").IsSuccess)

	remaining := h.window.Popups().Stack()
	require.Len(t, remaining, 1)
	assert.Equal(t, stack[0].ID(), remaining[0].ID(), "latest presentation dismissed")
	assert.False(t, h.popups.IsActive("ConfirmPopup"))
}

func TestDismiss_TopMost(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, entity.ErrorCodeInvalidState, h.popups.Dismiss(h.ctx, "").ErrorCode)

	require.True(t, h.popups.Present(h.ctx, "ConfirmPopup", nil).IsSuccess)
	require.True(t, h.popups.Dismiss(h.ctx, "").IsSuccess)

	assert.Empty(t, h.window.Popups().Stack())
	assert.False(t, h.popups.IsActive("ConfirmPopup"), "unload removes the entry")
}

func TestDismiss_RemovedOutsideController(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.popups.Present(h.ctx, "ConfirmPopup", nil).IsSuccess)
	top := h.window.Popups().Top()

	require.NoError(t, h.window.Popups().Remove(h.ctx, top, false))

	assert.False(t, h.popups.IsActive("ConfirmPopup"))
	assert.Equal(t, entity.ErrorCodeInvalidState, h.popups.Dismiss(h.ctx, "ConfirmPopup").ErrorCode)
}

func TestDismissAll(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.popups.Present(h.ctx, "ConfirmPopup", nil).IsSuccess)
	require.True(t, h.popups.Present(h.ctx, "ConfirmPopup", nil).IsSuccess)

	require.True(t, h.popups.DismissAll(h.ctx).IsSuccess)

	assert.Empty(t, h.window.Popups().Stack())
	assert.Empty(t, h.popups.ActiveNames())
}

func newMockedPopups(t *testing.T, surface port.PopupSurface) *usecase.ManagePopupsUseCase {
	t.Helper()
	catalog := container.NewCatalog(popupType("ConfirmPopup"))
	d := dispatcher.NewLifecycleDispatcher(dispatcher.WithTaskRunner(dispatcher.InlineRunner))
	return usecase.NewManagePopupsUseCase(context.Background(), usecase.ManagePopupsUseCaseConfig{
		Resolver: usecase.NewPageResolver(catalog, usecase.NameCaseSensitive),
		Factory:  usecase.NewPageFactory(usecase.PageFactoryConfig{Dispatcher: d}),
		Surface:  surface,
		Animated: true,
	})
}

func TestPresent_PushFailureForgetsEntry(t *testing.T) {
	surface := mocks.NewMockPopupSurface(t)
	surface.EXPECT().Push(mock.Anything, mock.Anything, true).Return(errors.New("layer closed"))
	popups := newMockedPopups(t, surface)

	res := popups.Present(context.Background(), "ConfirmPopup", nil)

	assert.Equal(t, entity.ErrorCodeGeneral, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "layer closed")
	assert.False(t, popups.IsActive("ConfirmPopup"))
}

func TestDismiss_SurfaceErrors(t *testing.T) {
	surface := mocks.NewMockPopupSurface(t)
	var pushed port.Page
	surface.EXPECT().Push(mock.Anything, mock.Anything, false).
		Run(func(_ context.Context, page port.Page, _ bool) { pushed = page }).
		Return(nil)
	surface.EXPECT().Stack().RunAndReturn(func() []port.Page { return []port.Page{pushed} })
	surface.EXPECT().Remove(mock.Anything, mock.Anything, false).Return(errors.New("busy"))
	surface.EXPECT().Pop(mock.Anything, false).Return(errors.New("busy"))
	surface.EXPECT().PopAll(mock.Anything, false).Return(errors.New("busy"))
	popups := newMockedPopups(t, surface)

	require.True(t, popups.Present(context.Background(), "ConfirmPopup", nil, usecase.WithPopupAnimation(false)).IsSuccess)

	opts := usecase.WithPopupAnimation(false)
	assert.Equal(t, entity.ErrorCodeGeneral, popups.Dismiss(context.Background(), "ConfirmPopup", opts).ErrorCode)
	assert.True(t, popups.IsActive("ConfirmPopup"), "entry kept when removal fails")
	assert.Equal(t, entity.ErrorCodeGeneral, popups.Dismiss(context.Background(), "", opts).ErrorCode)
	assert.Equal(t, entity.ErrorCodeGeneral, popups.DismissAll(context.Background(), opts).ErrorCode)
}

func TestDismiss_StaleEntry(t *testing.T) {
	surface := mocks.NewMockPopupSurface(t)
	surface.EXPECT().Push(mock.Anything, mock.Anything, true).Return(nil)
	surface.EXPECT().Stack().Return(nil)
	popups := newMockedPopups(t, surface)
	require.True(t, popups.Present(context.Background(), "ConfirmPopup", nil).IsSuccess)

	res := popups.Dismiss(context.Background(), "ConfirmPopup")

	assert.Equal(t, entity.ErrorCodeInvalidState, res.ErrorCode)
	assert.False(t, popups.IsActive("ConfirmPopup"), "stale entry dropped")
}

// presentAsync starts PresentForResult and waits until the popup is shown.
func presentAsync(t *testing.T, h *harness, ctx context.Context) (*ConfirmViewModel, <-chan entity.ValueResult[bool]) {
	t.Helper()
	out := make(chan entity.ValueResult[bool], 1)
	go func() {
		out <- usecase.PresentForResult[bool](ctx, h.popups, "ConfirmPopup", entity.ParametersOf("question", "sure?"))
	}()
	require.Eventually(t, func() bool {
		return h.popups.IsActive("ConfirmPopup") && len(h.window.Popups().Stack()) == 1
	}, time.Second, time.Millisecond)
	return lastVM[*ConfirmViewModel](t, h, "ConfirmPopup"), out
}

func TestPresentForResult_Completed(t *testing.T) {
	h := newHarness(t)
	vm, out := presentAsync(t, h, h.ctx)
	require.True(t, vm.Pending())
	assert.Equal(t, "sure?", vm.Question)

	require.True(t, vm.Complete(h.ctx, true).IsSuccess)

	res := <-out
	require.True(t, res.IsSuccess, res.ErrorMessage)
	assert.True(t, res.Value)
	assert.Empty(t, h.window.Popups().Stack())
	assert.False(t, h.popups.IsActive("ConfirmPopup"))
}

func TestPresentForResult_CancelledByViewModel(t *testing.T) {
	h := newHarness(t)
	vm, out := presentAsync(t, h, h.ctx)

	require.True(t, vm.Cancel(h.ctx).IsSuccess)

	res := <-out
	assert.Equal(t, entity.ErrorCodeCancelled, res.ErrorCode)
	assert.Equal(t, "popup ConfirmPopup was cancelled", res.ErrorMessage)
	assert.Empty(t, h.window.Popups().Stack(), "presenter dismisses the popup")
}

func TestPresentForResult_BackgroundTap(t *testing.T) {
	h := newHarness(t)
	_, out := presentAsync(t, h, h.ctx)

	top := h.window.Popups().Top().(*tui.PopupPage)
	assert.True(t, top.SendBackRequested(), "back is consumed but ignored by default")
	top.TapBackground()

	res := <-out
	assert.Equal(t, entity.ErrorCodeCancelled, res.ErrorCode)
	assert.Empty(t, h.window.Popups().Stack())
}

func TestPresentForResult_ForcedDismissal(t *testing.T) {
	h := newHarness(t)
	_, out := presentAsync(t, h, h.ctx)

	require.True(t, h.popups.DismissAll(h.ctx).IsSuccess)

	res := <-out
	assert.Equal(t, entity.ErrorCodeCancelled, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "Additional info:")
	assert.Contains(t, res.ErrorMessage, "is not active")
}

func TestPresentForResult_Faulted(t *testing.T) {
	h := newHarness(t)
	vm, out := presentAsync(t, h, h.ctx)

	require.True(t, vm.Fail(h.ctx, errors.New("validation failed")).IsSuccess)

	res := <-out
	assert.Equal(t, entity.ErrorCodeUnknown, res.ErrorCode)
	assert.Equal(t, "validation failed", res.ErrorMessage)
	assert.Empty(t, h.window.Popups().Stack())
}

func TestPresentForResult_FaultedWithoutError(t *testing.T) {
	h := newHarness(t)
	vm, out := presentAsync(t, h, h.ctx)

	require.True(t, vm.Fail(h.ctx, nil).IsSuccess)

	res := <-out
	assert.False(t, res.IsSuccess)
	assert.Equal(t, entity.ErrorCodeUnknown, res.ErrorCode)
	assert.Equal(t, entity.ErrCompletionFaulted.Error(), res.ErrorMessage)
}

func TestPresentForResult_ContextCancelled(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(h.ctx)
	vm, out := presentAsync(t, h, ctx)

	cancel()

	res := <-out
	assert.Equal(t, entity.ErrorCodeCancelled, res.ErrorCode)
	assert.False(t, vm.Pending(), "late results are dropped")
	assert.Empty(t, h.window.Popups().Stack())
}

func TestPresentForResult_PresentFailure(t *testing.T) {
	h := newHarness(t)

	res := usecase.PresentForResult[bool](h.ctx, h.popups, "NopePopup", nil)

	assert.Equal(t, entity.ErrorCodeInvalidState, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "failed to display popup NopePopup")
}

func TestPresentFor_DerivesNameFromViewModel(t *testing.T) {
	h := newHarness(t)
	out := make(chan entity.ValueResult[bool], 1)
	go func() {
		out <- usecase.PresentFor[ConfirmViewModel, bool](h.ctx, h.popups, nil)
	}()
	require.Eventually(t, func() bool { return h.popups.IsActive("ConfirmPopup") }, time.Second, time.Millisecond)

	require.True(t, usecase.DismissFor[ConfirmViewModel](h.ctx, h.popups).IsSuccess)

	res := <-out
	assert.Equal(t, entity.ErrorCodeCancelled, res.ErrorCode, "unload cancels the pending result")
}

type explodingViewModel struct{}

func (explodingViewModel) OnParametersSet(*entity.Parameters) { panic("boom") }

func TestPresent_PanicBecomesUnknown(t *testing.T) {
	h := newHarness(t)
	h.catalog.Add(popupType("ExplodingPopup"))
	mapVM(t, h, "ExplodingPopup", func() *explodingViewModel { return &explodingViewModel{} })

	var res entity.Result
	require.NotPanics(t, func() {
		res = h.popups.Present(h.ctx, "ExplodingPopup", nil)
	})

	assert.Equal(t, entity.ErrorCodeUnknown, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "boom")
	assert.False(t, h.popups.IsActive("ExplodingPopup"))
	assert.Empty(t, h.window.Popups().Stack())
}

func TestDismiss_SurfacePanicBecomesUnknown(t *testing.T) {
	surface := mocks.NewMockPopupSurface(t)
	surface.EXPECT().Stack().Return([]port.Page{tui.NewPopupPage("ConfirmPopup")})
	surface.EXPECT().Pop(mock.Anything, true).Run(func(context.Context, bool) { panic("layer gone") }).Return(nil)
	surface.EXPECT().PopAll(mock.Anything, true).Run(func(context.Context, bool) { panic("layer gone") }).Return(nil)
	popups := newMockedPopups(t, surface)

	tests := []struct {
		name string
		call func() entity.Result
	}{
		{"dismiss top", func() entity.Result { return popups.Dismiss(context.Background(), "") }},
		{"dismiss all", func() entity.Result { return popups.DismissAll(context.Background()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res entity.Result
			require.NotPanics(t, func() { res = tt.call() })
			assert.Equal(t, entity.ErrorCodeUnknown, res.ErrorCode)
			assert.Contains(t, res.ErrorMessage, "layer gone")
		})
	}
}
