// Package history is a snapshot based undo/redo log for shape collections.
package history

import (
	"errors"
	"sync"

	"github.com/philipparndt/goshapes/pkg/shape"
)

var (
	// ErrNothingToUndo is returned by Undo on an empty undo stack
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo on an empty redo stack
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultLimit caps the number of undo steps kept when none is configured
const DefaultLimit = 200

type entry struct {
	label    string
	snapshot *shape.Collection
}

// Log records checkpoints of a collection before it is mutated and can roll
// the collection back and forth between them. Listeners are notified after
// every undo and redo.
type Log struct {
	mu        sync.Mutex
	limit     int
	undo      []entry
	redo      []entry
	listeners map[int]func()
	nextID    int
}

// NewLog creates a log keeping at most limit undo steps (DefaultLimit when
// limit <= 0).
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		limit:     limit,
		listeners: make(map[int]func()),
	}
}

// RecordCheckpoint snapshots target under label. Must be called immediately
// before the mutation it protects. Recording clears the redo stack.
func (l *Log) RecordCheckpoint(target *shape.Collection, label string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.undo = append(l.undo, entry{label: label, snapshot: target.Clone()})
	if len(l.undo) > l.limit {
		l.undo = l.undo[len(l.undo)-l.limit:]
	}
	l.redo = nil
}

// Undo restores target to the most recent checkpoint and returns its label
func (l *Log) Undo(target *shape.Collection) (string, error) {
	l.mu.Lock()
	if len(l.undo) == 0 {
		l.mu.Unlock()
		return "", ErrNothingToUndo
	}

	e := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, entry{label: e.label, snapshot: target.Clone()})
	target.Restore(e.snapshot)
	l.mu.Unlock()

	l.notify()
	return e.label, nil
}

// Redo reapplies the most recently undone step and returns its label
func (l *Log) Redo(target *shape.Collection) (string, error) {
	l.mu.Lock()
	if len(l.redo) == 0 {
		l.mu.Unlock()
		return "", ErrNothingToRedo
	}

	e := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, entry{label: e.label, snapshot: target.Clone()})
	target.Restore(e.snapshot)
	l.mu.Unlock()

	l.notify()
	return e.label, nil
}

// CanUndo reports whether Undo would succeed
func (l *Log) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.undo) > 0
}

// CanRedo reports whether Redo would succeed
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.redo) > 0
}

// Labels returns the undo stack labels, oldest first
func (l *Log) Labels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	labels := make([]string, len(l.undo))
	for i, e := range l.undo {
		labels[i] = e.label
	}
	return labels
}

// Clear drops all undo and redo steps
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.undo = nil
	l.redo = nil
}

// Subscribe registers fn to run after every undo and redo. The returned
// function removes the subscription.
func (l *Log) Subscribe(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.listeners[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

func (l *Log) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.listeners))
	for id := 0; id < l.nextID; id++ {
		if fn, ok := l.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
