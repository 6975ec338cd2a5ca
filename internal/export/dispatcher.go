// Package export runs one invoice export attempt: render, capture,
// package, then deliver through a platform channel. Each attempt is an
// independent state machine over an immutable invoice snapshot.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/pdf"
	"github.com/rezonia/invoice-studio/internal/raster"
	"github.com/rezonia/invoice-studio/internal/render"
)

// State is the export attempt state.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateDelivering
	StateDelivered
	StateCancelledByUser
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateDelivering:
		return "delivering"
	case StateDelivered:
		return "delivered"
	case StateCancelledByUser:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Severity classifies a status message for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Status is the human-readable outcome of one state transition.
type Status struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// StatusFunc observes every state transition of an export attempt.
type StatusFunc func(state State, status Status)

// Artifact is the named, typed byte payload produced by an export.
type Artifact struct {
	Name string
	MIME string
	Data []byte
}

// ShareMeta is the title and text handed to a native share surface.
type ShareMeta struct {
	Title string
	Text  string
}

// Channel is the delivery channel an attempt ended up using.
type Channel string

const (
	ChannelShare Channel = "share"
	ChannelSave  Channel = "save"
	ChannelOpen  Channel = "open"
)

// Platform answers capability queries and executes delivery channels.
// Share reports a user dismissal as model.ErrUserCancelled; any other
// non-nil error is a real failure.
type Platform interface {
	CanShare(a Artifact) bool
	Share(ctx context.Context, a Artifact, meta ShareMeta) error
	Open(ctx context.Context, a Artifact) (string, error)
	Save(ctx context.Context, a Artifact) (string, error)
}

// Result is the terminal outcome of one export attempt.
type Result struct {
	State    State
	Channel  Channel
	Artifact *Artifact
	Location string
	Statuses []Status
	Err      error
}

// Dispatcher builds export attempts. It holds configuration only; all
// per-attempt state lives in the run, so overlapping calls cannot
// corrupt each other.
type Dispatcher struct {
	platform   Platform
	rasterizer *raster.Rasterizer
	layout     render.Layout
	onStatus   StatusFunc
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLayout overrides the default page layout.
func WithLayout(layout render.Layout) Option {
	return func(d *Dispatcher) {
		d.layout = layout
	}
}

// WithRasterizer overrides the default rasterizer, e.g. to install an
// asset resolver.
func WithRasterizer(rz *raster.Rasterizer) Option {
	return func(d *Dispatcher) {
		d.rasterizer = rz
	}
}

// WithStatusFunc installs a transition observer.
func WithStatusFunc(fn StatusFunc) Option {
	return func(d *Dispatcher) {
		d.onStatus = fn
	}
}

// NewDispatcher creates a dispatcher delivering through the given
// platform.
func NewDispatcher(platform Platform, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		platform:   platform,
		rasterizer: raster.New(),
		layout:     render.DefaultLayout(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// run carries the state of a single attempt.
type run struct {
	state    State
	statuses []Status
	onStatus StatusFunc
}

func (r *run) transition(state State, status Status) {
	r.state = state
	r.statuses = append(r.statuses, status)
	if r.onStatus != nil {
		r.onStatus(state, status)
	}
}

// Share exports the snapshot and hands it to the platform share surface
// when supported, falling back to opening it in a new viewing context.
func (d *Dispatcher) Share(ctx context.Context, snap model.Invoice) Result {
	r := &run{state: StateIdle, onStatus: d.onStatus}

	artifact, err := d.generate(ctx, r, snap)
	if err != nil {
		return d.fail(r, ChannelShare, "Error sharing PDF", err)
	}

	r.transition(StateDelivering, Status{
		Message:  "Preparing PDF for sharing...",
		Severity: SeverityInfo,
	})

	if d.platform.CanShare(*artifact) {
		meta := ShareMeta{
			Title: fmt.Sprintf("Invoice #%s", snap.DisplayNumber()),
			Text:  fmt.Sprintf("Invoice for %s\nTotal Amount: KWD %s", snap.Header.BillTo, snap.Total().StringFixed(3)),
		}
		err := d.platform.Share(ctx, *artifact, meta)
		switch {
		case errors.Is(err, model.ErrUserCancelled):
			r.transition(StateCancelledByUser, Status{
				Message:  "Sharing cancelled",
				Severity: SeverityInfo,
			})
			return Result{State: r.state, Channel: ChannelShare, Artifact: artifact, Statuses: r.statuses}
		case err != nil:
			return d.fail(r, ChannelShare, "Error sharing PDF", err)
		}
		r.transition(StateDelivered, Status{
			Message:  "Sharing initiated!",
			Severity: SeveritySuccess,
		})
		return Result{State: r.state, Channel: ChannelShare, Artifact: artifact, Statuses: r.statuses}
	}

	// No native share surface: open in a new viewing context. No further
	// user decision is awaited, so this delivers directly.
	location, err := d.platform.Open(ctx, *artifact)
	if err != nil {
		return d.fail(r, ChannelOpen, "Error sharing PDF", err)
	}
	r.transition(StateDelivered, Status{
		Message:  "PDF opened in a new viewer. You can now save and share it manually.",
		Severity: SeverityInfo,
	})
	return Result{State: r.state, Channel: ChannelOpen, Artifact: artifact, Location: location, Statuses: r.statuses}
}

// Download exports the snapshot straight to the save channel, bypassing
// channel selection.
func (d *Dispatcher) Download(ctx context.Context, snap model.Invoice) Result {
	r := &run{state: StateIdle, onStatus: d.onStatus}

	artifact, err := d.generate(ctx, r, snap)
	if err != nil {
		return d.fail(r, ChannelSave, "Error downloading PDF", err)
	}

	r.transition(StateDelivering, Status{
		Message:  "Saving PDF...",
		Severity: SeverityInfo,
	})

	location, err := d.platform.Save(ctx, *artifact)
	if err != nil {
		return d.fail(r, ChannelSave, "Error downloading PDF", err)
	}
	r.transition(StateDelivered, Status{
		Message:  "PDF downloaded successfully!",
		Severity: SeveritySuccess,
	})
	return Result{State: r.state, Channel: ChannelSave, Artifact: artifact, Location: location, Statuses: r.statuses}
}

// Generate runs the render, capture and package stages for a snapshot
// without delivering the result. Callers that deliver over their own
// channel (e.g. an HTTP response) use this directly.
func (d *Dispatcher) Generate(ctx context.Context, snap model.Invoice) (*Artifact, error) {
	return d.generate(ctx, &run{state: StateIdle, onStatus: d.onStatus}, snap)
}

func (d *Dispatcher) generate(ctx context.Context, r *run, snap model.Invoice) (*Artifact, error) {
	r.transition(StateGenerating, Status{
		Message:  "Generating PDF...",
		Severity: SeverityInfo,
	})

	page := render.Render(snap, d.layout)

	bmp, err := d.rasterizer.Rasterize(ctx, page, d.layout)
	if err != nil {
		return nil, err
	}

	png, err := bmp.EncodePNG()
	if err != nil {
		return nil, model.NewPackagingError("failed to encode bitmap", err)
	}

	data, err := pdf.Package(png, d.layout.PageWidthMM, d.layout.PageHeightMM)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Name: snap.FileName(),
		MIME: pdf.MIMEType,
		Data: data,
	}, nil
}

func (d *Dispatcher) fail(r *run, channel Channel, prefix string, err error) Result {
	r.transition(StateFailed, Status{
		Message:  fmt.Sprintf("%s: %v", prefix, err),
		Severity: SeverityError,
	})
	return Result{State: r.state, Channel: channel, Statuses: r.statuses, Err: err}
}
