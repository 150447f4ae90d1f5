package tray_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/cursormon/internal/hotkey"
	"github.com/Norgate-AV/cursormon/internal/logger"
	"github.com/Norgate-AV/cursormon/internal/testutil"
	"github.com/Norgate-AV/cursormon/internal/tray"
)

type mockArm struct {
	active   bool
	startErr error
	stopErr  error
	starts   int
	stops    int
}

func (m *mockArm) Start() error {
	m.starts++
	if m.active {
		return hotkey.ErrAlreadyActive
	}

	if m.startErr != nil {
		return m.startErr
	}

	m.active = true
	return nil
}

func (m *mockArm) Stop() error {
	m.stops++
	m.active = false
	return m.stopErr
}

func (m *mockArm) Active() bool { return m.active }

type mockView struct {
	states []bool
}

func (v *mockView) SetArmed(armed bool) { v.states = append(v.states, armed) }

func newController(arm *mockArm, elevated bool) (*tray.Controller, *testutil.MockNotifier, *mockView) {
	notifier := testutil.NewMockNotifier()
	view := &mockView{}

	ctrl := tray.NewController(arm, notifier, logger.NewNoOpLogger(), tray.ControllerOptions{Elevated: elevated})
	ctrl.SetView(view)

	return ctrl, notifier, view
}

func TestController_SetViewSyncsState(t *testing.T) {
	t.Parallel()

	_, _, view := newController(&mockArm{}, false)

	assert.Equal(t, []bool{false}, view.states)
}

func TestController_StartArms(t *testing.T) {
	t.Parallel()

	arm := &mockArm{}
	ctrl, notifier, view := newController(arm, false)

	assert.True(t, ctrl.Start())
	assert.True(t, ctrl.Armed())
	assert.Equal(t, []bool{false, true}, view.states, "Start should disable Start and enable Stop")
	assert.Empty(t, notifier.Notifications)
}

func TestController_StartWhileArmedIsNoOp(t *testing.T) {
	t.Parallel()

	arm := &mockArm{}
	ctrl, notifier, _ := newController(arm, false)

	assert.True(t, ctrl.Start())
	assert.True(t, ctrl.Start())

	assert.Equal(t, 2, arm.starts)
	assert.True(t, arm.active)
	assert.Empty(t, notifier.Notifications)
}

func TestController_StartFailureNotifiesOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elevated bool
		wantMsg  string
	}{
		{name: "not elevated", elevated: false, wantMsg: tray.RegisterFailedMessage},
		{name: "elevated", elevated: true, wantMsg: tray.RegisterConflictMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			arm := &mockArm{startErr: fmt.Errorf("%w: hotkey taken", hotkey.ErrRegister)}
			ctrl, notifier, view := newController(arm, tt.elevated)

			assert.False(t, ctrl.Start())
			assert.False(t, ctrl.Armed())
			assert.Equal(t, []bool{false, false}, view.states)

			errs := notifier.Errors()
			if assert.Len(t, errs, 1) {
				assert.Equal(t, tray.ErrorTitle, errs[0].Title)
				assert.Equal(t, tt.wantMsg, errs[0].Message)
			}
		})
	}
}

func TestController_Stop(t *testing.T) {
	t.Parallel()

	arm := &mockArm{}
	ctrl, _, view := newController(arm, false)

	ctrl.Start()
	ctrl.Stop()

	assert.False(t, ctrl.Armed())
	assert.Equal(t, 1, arm.stops)
	assert.Equal(t, []bool{false, true, false}, view.states)
}

func TestController_StopErrorIsLoggedOnly(t *testing.T) {
	t.Parallel()

	arm := &mockArm{stopErr: errors.New("not registered")}
	ctrl, notifier, _ := newController(arm, false)

	assert.NotPanics(t, ctrl.Stop)
	assert.Empty(t, notifier.Notifications)
}

func TestController_RestartAfterStop(t *testing.T) {
	t.Parallel()

	arm := &mockArm{}
	ctrl, _, _ := newController(arm, false)

	assert.True(t, ctrl.Start())
	ctrl.Stop()
	assert.True(t, ctrl.Start())
	assert.True(t, ctrl.Armed())
}

func TestController_NilViewAllowed(t *testing.T) {
	t.Parallel()

	ctrl := tray.NewController(&mockArm{}, testutil.NewMockNotifier(), logger.NewNoOpLogger(), tray.ControllerOptions{})

	assert.NotPanics(t, func() {
		ctrl.Start()
		ctrl.Stop()
	})
}
