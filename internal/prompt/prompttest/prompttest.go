// Package prompttest provides a scripted Prompter for tests.
package prompttest

import (
	"sync"

	"mini-os/internal/prompt"
)

// Reply scripts the answer to one prompt. Cancel simulates the user
// dismissing the dialog.
type Reply struct {
	Value  string
	Cancel bool
}

// Call records one prompt shown to the user.
type Call struct {
	Kind    string
	Title   string
	Label   string
	Filters []prompt.FileFilter
}

type ShownError struct {
	Title string
	Err   error
}

// Prompter answers prompts from a queue of replies. A prompt with no reply
// queued behaves as cancelled.
type Prompter struct {
	mu      sync.Mutex
	replies []Reply
	Calls   []Call
	Errors  []ShownError
}

func New(replies ...Reply) *Prompter {
	return &Prompter{replies: replies}
}

// Queue appends replies for upcoming prompts.
func (p *Prompter) Queue(replies ...Reply) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies = append(p.replies, replies...)
}

func (p *Prompter) OpenFile(title string, filters []prompt.FileFilter, onChosen func(path string)) {
	p.answer(Call{Kind: "open", Title: title, Filters: filters}, onChosen)
}

func (p *Prompter) SaveFile(title string, filters []prompt.FileFilter, onChosen func(path string)) {
	p.answer(Call{Kind: "save", Title: title, Filters: filters}, onChosen)
}

func (p *Prompter) AskText(title, label string, onConfirm func(text string)) {
	p.answer(Call{Kind: "text", Title: title, Label: label}, onConfirm)
}

func (p *Prompter) ShowError(title string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Errors = append(p.Errors, ShownError{Title: title, Err: err})
}

// LastError returns the most recent error notification, or nil.
func (p *Prompter) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Errors) == 0 {
		return nil
	}
	return p.Errors[len(p.Errors)-1].Err
}

func (p *Prompter) answer(call Call, cb func(string)) {
	p.mu.Lock()
	p.Calls = append(p.Calls, call)
	var reply Reply
	if len(p.replies) == 0 {
		reply = Reply{Cancel: true}
	} else {
		reply = p.replies[0]
		p.replies = p.replies[1:]
	}
	p.mu.Unlock()

	if !reply.Cancel {
		cb(reply.Value)
	}
}

var _ prompt.Prompter = (*Prompter)(nil)
