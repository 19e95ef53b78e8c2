package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUse_PanicsBeforeInit(t *testing.T) {
	prev := active
	defer func() { active = prev }()

	active = nil
	assert.Panics(t, func() { Use() })

	Init()
	assert.NotPanics(t, func() { Use() })
}

func TestDismissToast_IgnoresStaleTimer(t *testing.T) {
	s := New()

	s.ShowToast("first")
	staleSeq := s.toastSeq
	s.ShowToast("second")

	// The first toast's timer firing late must not dismiss the second.
	s.dismissToast(staleSeq)
	msg, visible := s.Toast()
	assert.True(t, visible)
	assert.Equal(t, "second", msg)

	s.dismissToast(s.toastSeq)
	_, visible = s.Toast()
	assert.False(t, visible)
}
