package appstate

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixpaint/internal/clipboard"
	"github.com/example/pixpaint/internal/display"
	"github.com/example/pixpaint/internal/frame"
	"github.com/example/pixpaint/internal/layout"
	"github.com/example/pixpaint/internal/notify"
	"github.com/example/pixpaint/internal/picker"
	"github.com/example/pixpaint/internal/render"
	"github.com/example/pixpaint/internal/theme"
	"github.com/example/pixpaint/internal/tools"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// messageDuration is how long a status message stays up.
const messageDuration = 2 * time.Second

var (
	writeImageFn = clipboard.WriteImage
	readImageFn  = clipboard.ReadImage
	fitScaleFn   = display.FitScale
)

// AppState holds application configuration for the paint window.
type AppState struct {
	Layout layout.Layout
	Scale  int // window pixels per frame pixel; zero picks one from the screen
	Tool   tools.Kind
	Color  *frame.Color
	Theme  *theme.Theme
	Title  string

	notifier *notify.Notifier

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithLayout sets the canvas geometry.
func WithLayout(l layout.Layout) Option { return func(a *AppState) { a.Layout = l } }

// WithScale sets a fixed window scale.
func WithScale(scale int) Option { return func(a *AppState) { a.Scale = scale } }

// WithTool selects the tool active on start.
func WithTool(k tools.Kind) Option { return func(a *AppState) { a.Tool = k } }

// WithColor preselects the drawing colour.
func WithColor(c frame.Color) Option { return func(a *AppState) { a.Color = &c } }

// WithTheme sets the chrome colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithNotifier sets where copy, paste and clear notifications go.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Layout: layout.Default(),
		Tool:   tools.DefaultKind,
		Title:  "pixpaint",
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main opens the window on s and runs the event loop until the window is
// closed or a quit key is pressed.
func (a *AppState) Main(s screen.Screen) {
	defer a.notifyClose()

	scale := a.Scale
	if scale <= 0 {
		var err error
		scale, err = fitScaleFn(a.Layout.Size(), render.StatusHeight)
		if err != nil {
			log.Printf("screen size: %v; using scale %d", err, scale)
		}
	}
	width := a.Layout.Width() * scale
	height := a.Layout.Height()*scale + render.StatusHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	ss := a.newSession()
	ss.resize(width, height)
	ss.repaint = func() { w.Send(paint.Event{}) }

	presenter := render.NewPresenter(a.Theme)
	pt := startPainter(func(ctx context.Context, st paintState) {
		drawFrame(ctx, s, w, presenter, st)
	})
	defer pt.stop()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			ss.resize(width, height)
			w.Send(paint.Event{})
		case paint.Event:
			pt.submit(paintState{
				width:  width,
				height: height,
				frame:  ss.render(),
				status: ss.status(time.Now()),
			})
		case mouse.Event:
			if ss.input.Handle(e, ss.app) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if ss.keymap.Dispatch(e) {
				if ss.quit {
					return
				}
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("window: %v", e)
		}
	}
}

type paintState struct {
	width, height int
	frame         *image.RGBA
	status        render.Status
}

// painter draws frames on its own goroutine. A newer frame replaces one
// still waiting and cancels the one being drawn, up to frameDropThreshold
// times in a row.
type painter struct {
	ch   chan paintState
	done chan struct{}
	draw func(context.Context, paintState)

	mu     sync.Mutex
	cancel context.CancelFunc
	drops  int
}

func startPainter(draw func(context.Context, paintState)) *painter {
	p := &painter{
		ch:   make(chan paintState, 1),
		done: make(chan struct{}),
		draw: draw,
	}
	go p.loop()
	return p
}

func (p *painter) loop() {
	defer close(p.done)
	for st := range p.ch {
		ctx, cancel := context.WithCancel(context.Background())
		p.mu.Lock()
		p.cancel = cancel
		p.mu.Unlock()
		p.draw(ctx, st)
		p.mu.Lock()
		p.cancel = nil
		if ctx.Err() == nil {
			p.drops = 0
		}
		p.mu.Unlock()
		cancel()
	}
}

// submit queues st. Only the event loop goroutine may call it.
func (p *painter) submit(st paintState) {
	p.mu.Lock()
	if p.cancel != nil && p.drops < frameDropThreshold {
		p.cancel()
		p.drops++
	}
	p.mu.Unlock()
	select {
	case p.ch <- st:
	default:
		select {
		case <-p.ch:
		default:
		}
		p.ch <- st
	}
}

// stop cancels the frame in progress and returns once the painter goroutine
// has exited, so the window can be released safely.
func (p *painter) stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	close(p.ch)
	<-p.done
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, p *render.Presenter, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	area, bar := splitWindow(st.width, st.height)
	p.Present(b.RGBA(), area, st.frame)
	if ctx.Err() != nil {
		return
	}
	p.StatusBar(b.RGBA(), bar, st.status)
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// splitWindow divides the window into the frame area and the status bar.
func splitWindow(width, height int) (area, bar image.Rectangle) {
	split := max(height-render.StatusHeight, 0)
	return image.Rect(0, 0, width, split), image.Rect(0, split, width, height)
}

// session is the state of one open window, kept apart from shiny so it can
// be driven directly.
type session struct {
	app      *App
	input    Input
	keymap   *Keymap
	theme    *theme.Theme
	notifier *notify.Notifier

	message      string
	messageUntil time.Time
	quit         bool
	repaint      func()
}

func (a *AppState) newSession() *session {
	opts := []AppOption{StartTool(a.Tool)}
	if a.Color != nil {
		opts = append(opts, StartColor(*a.Color))
	}
	ss := &session{
		app:      NewApp(a.Layout, opts...),
		theme:    a.Theme,
		notifier: a.notifier,
	}
	ss.keymap = DefaultKeymap(Commands{
		SwitchTool: func(k tools.Kind) {
			ss.input.Cancel()
			ss.app.SwitchTool(k)
		},
		Clear: ss.clear,
		Copy:  ss.copy,
		Paste: ss.paste,
		Quit:  func() { ss.quit = true },
	})
	return ss
}

func (ss *session) resize(width, height int) {
	area, _ := splitWindow(width, height)
	ss.input.Placed, ss.input.Scale = render.Placement(ss.app.Layout().Size(), area)
}

// render draws a fresh logical frame: themed chrome, then the App.
func (ss *session) render() *image.RGBA {
	l := ss.app.Layout()
	img := image.NewRGBA(l.Bounds())
	paintChrome(frame.NewBuffer(img.Pix, l.Width(), l.Height()), l, frame.FromColor(ss.theme.Background))
	ss.app.Draw(img.Pix)
	return img
}

// paintChrome fills the border ring and the gaps around the swatches with
// c. The canvas is left for the App to draw.
func paintChrome(buf *frame.Buffer, l layout.Layout, c frame.Color) {
	ring := buf.Lend(frame.Exclude{
		Outer: frame.Rect(l.Bounds()),
		Inner: frame.Rect(l.CanvasRect()),
	})
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			ring.PutPixel(x, y, c)
		}
	}
}

func (ss *session) status(now time.Time) render.Status {
	c := ss.app.Color()
	st := render.Status{
		Tool:  fmt.Sprintf("%s  %s", ss.app.Tool().Kind(), picker.Name(c)),
		Color: c.NRGBA(),
	}
	if ss.message != "" && now.Before(ss.messageUntil) {
		st.Message = ss.message
	}
	return st
}

func (ss *session) say(msg string) {
	log.Print(msg)
	ss.message = msg
	ss.messageUntil = time.Now().Add(messageDuration)
	if ss.repaint != nil {
		repaint := ss.repaint
		time.AfterFunc(messageDuration, repaint)
	}
}

func (ss *session) copy() {
	img := ss.app.CanvasImage()
	if err := writeImageFn(img); err != nil {
		log.Printf("copy: %v", err)
		ss.say("copy failed")
		return
	}
	ss.say("canvas copied to clipboard")
	go ss.notifier.Copy(img)
}

func (ss *session) paste() {
	img, err := readImageFn()
	if err != nil {
		log.Printf("paste: %v", err)
		ss.say("nothing to paste")
		return
	}
	ss.app.Paste(img)
	sz := img.Bounds().Size()
	ss.say(fmt.Sprintf("pasted %dx%d image", sz.X, sz.Y))
	go ss.notifier.Paste(sz)
}

func (ss *session) clear() {
	ss.app.Clear()
	ss.say("canvas cleared")
	go ss.notifier.Clear()
}
