package dispatcher

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
)

type recordingVM struct {
	calls    []string
	asyncErr error
	params   *entity.Parameters
}

func (vm *recordingVM) record(name string) { vm.calls = append(vm.calls, name) }

func (vm *recordingVM) OnPageAppearing()    { vm.record("appearing") }
func (vm *recordingVM) OnPageDisappearing() { vm.record("disappearing") }
func (vm *recordingVM) OnPageAppearingAsync(context.Context) error {
	vm.record("appearing_async")
	return vm.asyncErr
}
func (vm *recordingVM) OnPageDisappearingAsync(context.Context) error {
	vm.record("disappearing_async")
	return nil
}
func (vm *recordingVM) OnNavigatedTo()   { vm.record("navigated_to") }
func (vm *recordingVM) OnNavigatedFrom() { vm.record("navigated_from") }
func (vm *recordingVM) OnPageUnloaded()  { vm.record("unloaded") }
func (vm *recordingVM) OnParametersSet(p *entity.Parameters) {
	vm.params = p
	vm.record("parameters_set")
}
func (vm *recordingVM) OnWindowActivated() { vm.record("window_activated") }
func (vm *recordingVM) OnNavigatedToRoot(*entity.Parameters) {
	vm.record("root")
}
func (vm *recordingVM) OnNavigatedToRootAsync(context.Context, *entity.Parameters) error {
	vm.record("root_async")
	return vm.asyncErr
}
func (vm *recordingVM) OnTabSelected()   { vm.record("tab_selected") }
func (vm *recordingVM) OnTabUnselected() { vm.record("tab_unselected") }

type hookFailure struct {
	hook string
	err  error
}

func newTestDispatcher(failures *[]hookFailure) *LifecycleDispatcher {
	return NewLifecycleDispatcher(
		WithTaskRunner(InlineRunner),
		WithErrorSink(func(_ context.Context, hook string, err error) {
			*failures = append(*failures, hookFailure{hook: hook, err: err})
		}),
	)
}

func TestDispatchPageEvent_SyncThenAsync(t *testing.T) {
	var failures []hookFailure
	d := newTestDispatcher(&failures)
	vm := &recordingVM{}

	d.DispatchPageEvent(context.Background(), vm, port.PageAppearing)
	d.DispatchPageEvent(context.Background(), vm, port.PageNavigatedTo)
	d.DispatchPageEvent(context.Background(), vm, port.PageDisappearing)
	d.DispatchPageEvent(context.Background(), vm, port.PageNavigatedFrom)
	d.DispatchPageEvent(context.Background(), vm, port.PageUnloaded)

	assert.Equal(t, []string{
		"appearing", "appearing_async",
		"navigated_to",
		"disappearing", "disappearing_async",
		"navigated_from",
		"unloaded",
	}, vm.calls)
	assert.Empty(t, failures)
}

func TestDispatchPageEvent_AsyncErrorGoesToSink(t *testing.T) {
	var failures []hookFailure
	d := newTestDispatcher(&failures)
	boom := errors.New("boom")
	vm := &recordingVM{asyncErr: boom}

	assert.NotPanics(t, func() {
		d.DispatchPageEvent(context.Background(), vm, port.PageAppearing)
	})

	require.Len(t, failures, 1)
	assert.Equal(t, "page_appearing", failures[0].hook)
	assert.ErrorIs(t, failures[0].err, boom)
}

type panickingVM struct{}

func (panickingVM) OnWindowActivatedAsync(context.Context) error { panic("exploded") }

func TestDispatch_AsyncPanicIsContained(t *testing.T) {
	var failures []hookFailure
	d := newTestDispatcher(&failures)

	assert.NotPanics(t, func() {
		d.DispatchWindowActivated(context.Background(), panickingVM{})
	})
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].err.Error(), "exploded")
}

func TestDispatchNavigatedToRoot_AwaitsAsyncError(t *testing.T) {
	var failures []hookFailure
	d := newTestDispatcher(&failures)
	boom := errors.New("refresh failed")
	vm := &recordingVM{asyncErr: boom}

	err := d.DispatchNavigatedToRoot(context.Background(), vm, entity.NewParameters())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"root", "root_async"}, vm.calls)
	assert.Empty(t, failures, "root hook errors are returned, not sunk")
}

func TestDispatch_NoCapabilitiesIsNoop(t *testing.T) {
	var failures []hookFailure
	d := newTestDispatcher(&failures)
	vm := struct{}{}

	assert.NotPanics(t, func() {
		d.DispatchPageEvent(context.Background(), vm, port.PageAppearing)
		d.DispatchParametersSet(context.Background(), vm, nil)
		d.DispatchTabSelected(context.Background(), vm)
		require.NoError(t, d.DispatchNavigatedToRoot(context.Background(), vm, nil))
	})
}

func TestDispatchParametersSetAndTabs(t *testing.T) {
	var failures []hookFailure
	d := newTestDispatcher(&failures)
	vm := &recordingVM{}
	params := entity.ParametersOf("id", "1")

	d.DispatchParametersSet(context.Background(), vm, params)
	d.DispatchTabSelected(context.Background(), vm)
	d.DispatchTabUnselected(context.Background(), vm)

	assert.Same(t, params, vm.params)
	assert.Equal(t, []string{"parameters_set", "tab_selected", "tab_unselected"}, vm.calls)
}

func TestDefaultSink_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	d := NewLifecycleDispatcher(
		WithTaskRunner(InlineRunner),
		WithLogger(func(context.Context) *zerolog.Logger { return &logger }),
	)

	d.DispatchPageEvent(context.Background(), &recordingVM{asyncErr: errors.New("bad")}, port.PageAppearing)

	assert.Contains(t, buf.String(), `"hook":"page_appearing"`)
	assert.Contains(t, buf.String(), `"error":"bad"`)
}
