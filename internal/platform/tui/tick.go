// Package tui runs the platformer in a terminal through Bubble Tea.
// It maps keys to held actions, drives the frame loop and persists results.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame with the time the frame fired.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures the wall-clock time between frames.
type frameClock struct {
	last    time.Time
	nominal time.Duration
}

// Elapsed returns the time since the previous frame. The first frame, and
// any frame whose clock went backwards, counts as one nominal tick.
func (c *frameClock) Elapsed(now time.Time) time.Duration {
	prev := c.last
	c.last = now
	if prev.IsZero() || !now.After(prev) {
		return c.nominal
	}
	return now.Sub(prev)
}

// Reset forgets the previous frame, e.g. after the game was paused by a menu.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
