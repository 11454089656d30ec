package service

import (
	"errors"
	"math"
	"sync"
	"time"

	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"

	"github.com/rs/zerolog"
)

// SliderGeometry fixes the slide-to-confirm track.
type SliderGeometry struct {
	MaxTravel      float64       // furthest the knob can move
	Cutoff         float64       // release at or past this offset confirms
	SpringDuration time.Duration // time to animate back to rest
}

// ConfirmationController implements ports.PaymentController.
//
// State flow: Idle -> Dragging -> (Confirmed | SprungBack) -> Idle.
// Every entry point runs under one mutex, so concurrent callers observe the
// same ordering a single-threaded event loop would produce.
type ConfirmationController struct {
	mu     sync.Mutex
	store  ports.BalanceStore
	geom   SliderGeometry
	rec    ports.ConfirmationRecorder
	log    zerolog.Logger
	now    func() time.Time
	notify func()

	state  domain.SliderState
	offset float64
	spring *springBack
	bucket domain.BucketKind
	amount string
}

// NewConfirmationController binds a controller to the store it debits.
// rec may be nil.
func NewConfirmationController(
	store ports.BalanceStore,
	geom SliderGeometry,
	rec ports.ConfirmationRecorder,
	log zerolog.Logger,
) *ConfirmationController {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &ConfirmationController{
		store:  store,
		geom:   geom,
		rec:    rec,
		log:    log,
		now:    time.Now,
		state:  domain.SliderIdle,
		bucket: domain.BucketWallet,
	}
}

// OnSettled registers fn to run when a spring-back finishes on its own.
// An interrupted spring-back never calls it.
func (c *ConfirmationController) OnSettled(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

// DragStart begins tracking a gesture. A running spring-back is cancelled
// and the knob stays where the animation left it until the first update.
func (c *ConfirmationController) DragStart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case domain.SliderDragging:
		return
	case domain.SliderSprungBack:
		if c.spring != nil {
			c.offset, _ = c.spring.offsetAt(c.now())
		}
		c.spring = nil
		c.log.Debug().Float64("offset", c.offset).Msg("spring-back interrupted by new drag")
	default:
		c.offset = 0
	}
	c.setState(domain.SliderDragging)
}

// DragUpdate moves the knob to the gesture's displacement, clamped to the track.
func (c *ConfirmationController) DragUpdate(dx float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.SliderDragging || math.IsNaN(dx) {
		return
	}
	c.offset = clampOffset(dx, c.geom.MaxTravel)
}

// DragEnd releases the knob. Past the cutoff it validates and applies at most
// one debit; otherwise the knob springs back. Outside a drag it does nothing.
func (c *ConfirmationController) DragEnd() (domain.Release, error) {
	c.mu.Lock()

	if c.state != domain.SliderDragging {
		c.mu.Unlock()
		c.rec.Released(domain.ReleaseIgnored)
		return domain.Release{Outcome: domain.ReleaseIgnored}, nil
	}

	if c.offset < c.geom.Cutoff {
		c.setState(domain.SliderSprungBack)
		c.spring = &springBack{from: c.offset, start: c.now(), duration: c.geom.SpringDuration}
		settled := c.advanceSpring(c.now())
		c.mu.Unlock()

		c.rec.Released(domain.ReleaseSprungBack)
		if settled != nil {
			settled()
		}
		return domain.Release{Outcome: domain.ReleaseSprungBack}, nil
	}

	c.setState(domain.SliderConfirmed)
	debit, err := c.confirm()
	c.offset = 0
	if err == nil {
		c.amount = ""
	}
	c.setState(domain.SliderIdle)
	c.mu.Unlock()

	if err != nil {
		c.rec.Released(domain.ReleaseRejected)
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.rec.Rejected(appErr.Code)
		}
		return domain.Release{Outcome: domain.ReleaseRejected}, err
	}
	c.rec.Released(domain.ReleaseConfirmed)
	c.rec.Debited(debit.Bucket)
	return domain.Release{Outcome: domain.ReleaseConfirmed, Debit: debit}, nil
}

// confirm validates against live state and writes the debit. Caller holds mu.
func (c *ConfirmationController) confirm() (*domain.Debit, error) {
	id, ok := c.store.Selected()
	if !ok {
		c.log.Warn().Msg("payment rejected: no restaurant selected")
		return nil, apperror.ErrNoContextSelected()
	}

	requested, err := domain.ParseAmount(c.amount)
	if err != nil {
		c.log.Warn().Str("restaurant_id", id).Str("amount", c.amount).Err(err).Msg("payment rejected: invalid amount")
		return nil, apperror.ErrInvalidAmount(err.Error())
	}

	intent := domain.PaymentIntent{
		RestaurantID: id,
		Bucket:       c.bucket,
		Requested:    requested,
		Available:    c.store.GetBalance(id, c.bucket),
	}
	if !intent.Confirmable() {
		c.log.Warn().
			Str("restaurant_id", id).
			Str("bucket", string(c.bucket)).
			Str("amount", requested.String()).
			Str("available", intent.Available.String()).
			Msg("payment rejected: insufficient balance")
		return nil, apperror.ErrInsufficientBalance()
	}

	after := intent.Remaining()
	if err := c.store.SetBalance(id, c.bucket, after); err != nil {
		c.log.Error().Err(err).Str("restaurant_id", id).Msg("debit write failed")
		return nil, err
	}

	c.log.Info().
		Str("restaurant_id", id).
		Str("bucket", string(c.bucket)).
		Str("amount", requested.String()).
		Str("balance_after", after.String()).
		Msg("payment confirmed")

	return &domain.Debit{
		RestaurantID: id,
		Bucket:       c.bucket,
		Amount:       requested,
		Before:       intent.Available,
		After:        after,
	}, nil
}

// SelectBucket chooses which balance the next release debits. Allowed
// mid-drag; the offset is left alone.
func (c *ConfirmationController) SelectBucket(bucket domain.BucketKind) error {
	if !bucket.Valid() {
		return apperror.ErrInvalidBucket(string(bucket))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bucket = bucket
	return nil
}

// SetAmount stores the raw amount text; it is parsed only on release.
func (c *ConfirmationController) SetAmount(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.amount = raw
}

// Tick advances a running spring-back to now and returns the current view.
func (c *ConfirmationController) Tick(now time.Time) domain.SliderView {
	c.mu.Lock()
	settled := c.advanceSpring(now)
	view := c.viewAt(now)
	c.mu.Unlock()

	if settled != nil {
		settled()
	}
	return view
}

// View returns the current view without advancing any animation.
func (c *ConfirmationController) View() domain.SliderView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewAt(c.now())
}

// advanceSpring moves a spring-back forward. When it finishes the controller
// returns to Idle and the settle callback is handed back for the caller to
// run after unlocking. Caller holds mu.
func (c *ConfirmationController) advanceSpring(now time.Time) func() {
	if c.state != domain.SliderSprungBack || c.spring == nil {
		return nil
	}
	offset, done := c.spring.offsetAt(now)
	c.offset = offset
	if !done {
		return nil
	}
	c.spring = nil
	c.offset = 0
	c.setState(domain.SliderIdle)
	return c.notify
}

// viewAt renders the state for a presenter. Caller holds mu.
func (c *ConfirmationController) viewAt(now time.Time) domain.SliderView {
	offset := c.offset
	if c.state == domain.SliderSprungBack && c.spring != nil {
		offset, _ = c.spring.offsetAt(now)
	}

	view := domain.SliderView{
		State:     c.state,
		Offset:    offset,
		MaxTravel: c.geom.MaxTravel,
		Cutoff:    c.geom.Cutoff,
		Bucket:    c.bucket,
		Amount:    c.amount,
		Options:   make([]domain.BucketOption, 0, len(domain.Buckets)),
	}

	id, ok := c.store.Selected()
	if ok {
		view.RestaurantID = id
	}
	for _, b := range domain.Buckets {
		view.Options = append(view.Options, domain.BucketOption{Bucket: b, Balance: c.store.GetBalance(id, b)})
	}
	if requested, err := domain.ParseAmount(c.amount); err == nil && ok {
		view.Insufficient = requested.GreaterThan(c.store.GetBalance(id, c.bucket))
	}
	return view
}

func (c *ConfirmationController) setState(next domain.SliderState) {
	if c.state == next {
		return
	}
	c.log.Debug().Str("from", string(c.state)).Str("to", string(next)).Float64("offset", c.offset).Msg("slider state")
	c.state = next
}

func clampOffset(dx, maxTravel float64) float64 {
	return math.Min(math.Max(dx, 0), maxTravel)
}

type nopRecorder struct{}

func (nopRecorder) Released(domain.ReleaseOutcome) {}
func (nopRecorder) Rejected(string)                {}
func (nopRecorder) Debited(domain.BucketKind)      {}
