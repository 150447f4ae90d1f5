package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/cursormon/internal/focus"
)

func TestMemory_TakeConsumesEntry(t *testing.T) {
	t.Parallel()

	m := focus.NewMemory()
	m.Record(1, 0xBEEF)

	hwnd, ok := m.Peek(1)
	assert.True(t, ok)
	assert.Equal(t, uintptr(0xBEEF), hwnd)

	hwnd, ok = m.Take(1)
	assert.True(t, ok)
	assert.Equal(t, uintptr(0xBEEF), hwnd)

	_, ok = m.Take(1)
	assert.False(t, ok, "An entry must only be restored once")
	assert.Equal(t, 0, m.Len())
}

func TestMemory_RecordReplaces(t *testing.T) {
	t.Parallel()

	m := focus.NewMemory()
	m.Record(0, 10)
	m.Record(0, 20)
	m.Record(1, 30)

	hwnd, _ := m.Peek(0)
	assert.Equal(t, uintptr(20), hwnd)
	assert.Equal(t, 2, m.Len())
}

func TestMemory_RecordZeroClears(t *testing.T) {
	t.Parallel()

	m := focus.NewMemory()
	m.Record(0, 10)
	m.Record(0, 0)

	_, ok := m.Peek(0)
	assert.False(t, ok)
}
