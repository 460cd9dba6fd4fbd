// Package workspace is the multi-document area of the desktop. It owns
// every child window from the moment it is opened until the user closes it.
package workspace

import (
	"io"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"mini-os/internal/eventbus"
	"mini-os/internal/logger"
)

// ID is the ownership handle of one child window.
type ID string

type Geometry struct {
	X, Y          float32
	Width, Height float32
}

// Spec describes a child window to open.
type Spec struct {
	Kind     string
	Title    string
	Icon     fyne.Resource
	Content  fyne.CanvasObject
	Geometry Geometry
}

type Publisher interface {
	Publish(event eventbus.Event)
}

// Window is a child window hosting one app instance.
type Window struct {
	ID       ID
	Kind     string
	OpenedAt time.Time

	title   string
	content fyne.CanvasObject
	inner   *container.InnerWindow
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) SetTitle(title string) {
	w.title = title
	w.inner.SetTitle(title)
}

// Geometry reports where the window currently sits in the workspace.
func (w *Window) Geometry() Geometry {
	pos, size := w.inner.Position(), w.inner.Size()
	return Geometry{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

func (w *Window) Content() fyne.CanvasObject {
	return w.content
}

// Container keeps child windows in opening order.
type Container struct {
	mu      sync.Mutex
	multi   *container.MultipleWindows
	windows map[ID]*Window
	order   []ID

	clock  clockwork.Clock
	bus    Publisher
	logger logger.Logger

	// OnChanged is called with the number of open windows after every open and close.
	OnChanged func(count int)
}

type Option func(*Container)

func WithClock(c clockwork.Clock) Option {
	return func(ws *Container) { ws.clock = c }
}

func WithPublisher(p Publisher) Option {
	return func(ws *Container) { ws.bus = p }
}

func WithLogger(l logger.Logger) Option {
	return func(ws *Container) { ws.logger = l }
}

func New(opts ...Option) *Container {
	c := &Container{
		multi:   container.NewMultipleWindows(),
		windows: make(map[ID]*Window),
		clock:   clockwork.NewRealClock(),
		logger:  logger.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Object is the canvas object that renders the child windows.
func (c *Container) Object() fyne.CanvasObject {
	return c.multi
}

// Open wraps spec.Content in a new child window and takes ownership of it.
func (c *Container) Open(spec Spec) *Window {
	inner := container.NewInnerWindow(spec.Title, spec.Content)
	if spec.Icon != nil {
		inner.Icon = spec.Icon
	}

	w := &Window{
		ID:       ID(uuid.NewString()),
		Kind:     spec.Kind,
		OpenedAt: c.clock.Now(),
		title:    spec.Title,
		content:  spec.Content,
		inner:    inner,
	}
	inner.CloseIntercept = func() { c.Close(w.ID) }

	g := spec.Geometry
	inner.Move(fyne.NewPos(g.X, g.Y))
	inner.Resize(fyne.NewSize(g.Width, g.Height))

	c.mu.Lock()
	c.windows[w.ID] = w
	c.order = append(c.order, w.ID)
	count := len(c.order)
	c.mu.Unlock()

	c.multi.Add(inner)

	c.logger.Debug("Workspace", "child window opened", map[string]interface{}{
		"id":    string(w.ID),
		"kind":  w.Kind,
		"title": w.title,
		"open":  count,
	})
	c.publish(eventbus.WindowOpened, w)
	c.changed(count)
	return w
}

// Close releases the window with the given handle. Content implementing
// io.Closer is closed. Other windows are not touched. It reports whether
// the handle was open.
func (c *Container) Close(id ID) bool {
	c.mu.Lock()
	w, ok := c.windows[id]
	if !ok {
		c.mu.Unlock()
		return false
	}
	delete(c.windows, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	count := len(c.order)
	c.mu.Unlock()

	for i, inner := range c.multi.Windows {
		if inner == w.inner {
			c.multi.Windows = append(c.multi.Windows[:i:i], c.multi.Windows[i+1:]...)
			break
		}
	}
	w.inner.Hide()
	c.multi.Refresh()

	if closer, ok := w.content.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.logger.Error("Workspace", err, map[string]interface{}{
				"id":   string(id),
				"kind": w.Kind,
			})
		}
	}

	c.logger.Debug("Workspace", "child window closed", map[string]interface{}{
		"id":   string(id),
		"kind": w.Kind,
		"open": count,
	})
	c.publish(eventbus.WindowClosed, w)
	c.changed(count)
	return true
}

func (c *Container) Get(id ID) (*Window, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.windows[id]
	return w, ok
}

// Windows returns the open windows in opening order.
func (c *Container) Windows() []*Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Window, len(c.order))
	for i, id := range c.order {
		out[i] = c.windows[id]
	}
	return out
}

func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// CloseAll closes every window, newest first.
func (c *Container) CloseAll() {
	windows := c.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		c.Close(windows[i].ID)
	}
}

// Shutdown releases all child windows and the resources their apps hold.
func (c *Container) Shutdown() {
	c.CloseAll()
}

func (c *Container) publish(eventType string, w *Window) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(eventbus.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		Data: map[string]interface{}{
			"id":    string(w.ID),
			"kind":  w.Kind,
			"title": w.title,
		},
	})
}

func (c *Container) changed(count int) {
	if c.OnChanged != nil {
		c.OnChanged(count)
	}
}
