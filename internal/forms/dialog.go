package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inmogestor-backend/internal/apperr"
)

// Schema describes a dialog for the frontend renderer.
type Schema struct {
	Title    string  `json:"title"`
	Fields   []Field `json:"fields"`
	Defaults any     `json:"defaults"`
}

type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Disabled    bool     `json:"disabled,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Toast is the confirmation shown after a successful submit.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validatable is any form with field rules.
type Validatable interface {
	Validate() map[string]string
}

// ── Submission ─────────────────────────────────────────────

// Submitter stands in for the backend call behind a dialog. It waits Delay
// and then runs After, if set. It only fails when ctx ends first.
type Submitter struct {
	Delay time.Duration
	After func(ctx context.Context)
}

func (s Submitter) Run(ctx context.Context) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if s.After != nil {
		s.After(ctx)
	}
	return nil
}

// ── Dialog lifecycle ───────────────────────────────────────

type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogSubmitting
)

func (s DialogState) String() string {
	switch s {
	case DialogClosed:
		return "closed"
	case DialogOpen:
		return "open"
	case DialogSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("DialogState(%d)", int(s))
}

// Dialog walks closed → open → submitting → closed. A rejected form keeps
// it open; there is no error state.
type Dialog struct {
	mu        sync.Mutex
	state     DialogState
	submitter Submitter
}

func NewDialog(s Submitter) *Dialog {
	return &Dialog{submitter: s}
}

func (d *Dialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Open is a no-op on an already open dialog.
func (d *Dialog) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case DialogClosed:
		d.state = DialogOpen
		return nil
	case DialogOpen:
		return nil
	}
	return fmt.Errorf("open dialog: %s", d.state)
}

// Close dismisses an idle dialog. A running submission cannot be dismissed.
func (d *Dialog) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == DialogSubmitting {
		return fmt.Errorf("close dialog: %s", d.state)
	}
	d.state = DialogClosed
	return nil
}

// Submit validates f and, if valid, runs the submitter and closes the
// dialog. Field errors come back as *apperr.ValidationError.
func (d *Dialog) Submit(ctx context.Context, f Validatable) error {
	d.mu.Lock()
	if d.state != DialogOpen {
		st := d.state
		d.mu.Unlock()
		return fmt.Errorf("submit dialog: %s", st)
	}
	if err := apperr.NewValidation(f.Validate()); err != nil {
		d.mu.Unlock()
		return err
	}
	d.state = DialogSubmitting
	d.mu.Unlock()

	err := d.submitter.Run(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = DialogOpen
		return err
	}
	d.state = DialogClosed
	return nil
}
