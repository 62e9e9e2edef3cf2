package testutil

import (
	"context"
	"sync"
)

// FakeWorkspace is a scriptable provenance.Workspace that counts calls.
type FakeWorkspace struct {
	mu sync.Mutex

	Clean    bool
	Revision string
	CleanErr error
	RevErr   error

	cleanCalls int
	revCalls   int
}

// NewCleanWorkspace returns a clean workspace at revision.
func NewCleanWorkspace(revision string) *FakeWorkspace {
	return &FakeWorkspace{Clean: true, Revision: revision}
}

// NewDirtyWorkspace returns a workspace with uncommitted changes.
func NewDirtyWorkspace() *FakeWorkspace {
	return &FakeWorkspace{Clean: false, Revision: "dirty"}
}

// IsClean reports the scripted state.
func (w *FakeWorkspace) IsClean(ctx context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cleanCalls++
	if w.CleanErr != nil {
		return false, w.CleanErr
	}
	return w.Clean, nil
}

// CurrentRevision reports the scripted revision.
func (w *FakeWorkspace) CurrentRevision(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.revCalls++
	if w.RevErr != nil {
		return "", w.RevErr
	}
	return w.Revision, nil
}

// Calls returns how often IsClean and CurrentRevision were called.
func (w *FakeWorkspace) Calls() (clean, revision int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cleanCalls, w.revCalls
}
