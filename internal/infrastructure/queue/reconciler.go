package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/api/metrics"
	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
	defaultRetries = 5
	defaultBackoff = 2 * time.Second
)

// ProfileReconciler retries profile inserts that failed during sign-up.
// Profiles are sharded to a fixed set of workers by email, guaranteeing
// per-user ordering, and each worker retries with a flat backoff until the
// insert succeeds or the attempt budget runs out.
type ProfileReconciler struct {
	workers  []chan domain.Profile
	profiles ports.ProfileRepository
	retries  int
	backoff  time.Duration
	log      zerolog.Logger
}

// NewProfileReconciler creates a reconciler with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewProfileReconciler(numWorkers int, profiles ports.ProfileRepository, log zerolog.Logger) *ProfileReconciler {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &ProfileReconciler{
		workers:  make([]chan domain.Profile, numWorkers),
		profiles: profiles,
		retries:  defaultRetries,
		backoff:  defaultBackoff,
		log:      log.With().Str("component", "profile_reconciler").Logger(),
	}
	for i := range r.workers {
		r.workers[i] = make(chan domain.Profile, channelBuffer)
	}
	return r
}

// WithRetryPolicy overrides the attempt budget and backoff. Intended for
// tests and tuning; call before Start.
func (r *ProfileReconciler) WithRetryPolicy(retries int, backoff time.Duration) *ProfileReconciler {
	if retries > 0 {
		r.retries = retries
	}
	if backoff > 0 {
		r.backoff = backoff
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *ProfileReconciler) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a profile to the worker responsible for its email. The send
// never blocks: when that worker's buffer is full the profile is dropped and
// counted, so a stalled reconciler cannot stall sign-ups.
func (r *ProfileReconciler) Enqueue(profile domain.Profile) {
	idx := r.shardIndex(profile.Email)
	select {
	case r.workers[idx] <- profile:
		metrics.ReconcileQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(r.workers[idx])))
	default:
		metrics.ProfileReconcileTotal.WithLabelValues("overflow").Inc()
		r.log.Error().
			Str("email", profile.Email).
			Int("worker_id", idx).
			Msg("reconcile queue full, profile dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (r *ProfileReconciler) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(r.workers)
}

func (r *ProfileReconciler) runWorker(ctx context.Context, id int, ch <-chan domain.Profile) {
	for {
		select {
		case <-ctx.Done():
			return
		case profile, ok := <-ch:
			if !ok {
				return
			}
			r.reconcile(ctx, id, profile)
			metrics.ReconcileQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

// reconcile retries the insert. A duplicate-email failure means the row was
// created elsewhere in the meantime and counts as done.
func (r *ProfileReconciler) reconcile(ctx context.Context, workerID int, profile domain.Profile) {
	for attempt := 1; attempt <= r.retries; attempt++ {
		err := r.profiles.Create(ctx, &profile)
		if err == nil || errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.ProfileReconcileTotal.WithLabelValues("created").Inc()
			r.log.Info().
				Str("email", profile.Email).
				Int("attempt", attempt).
				Int("worker_id", workerID).
				Msg("profile reconciled")
			return
		}

		metrics.ProfileReconcileTotal.WithLabelValues("retry").Inc()
		r.log.Warn().Err(err).
			Str("email", profile.Email).
			Int("attempt", attempt).
			Msg("profile reconcile attempt failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(r.backoff):
		}
	}

	metrics.ProfileReconcileTotal.WithLabelValues("dropped").Inc()
	r.log.Error().
		Str("email", profile.Email).
		Str("user_id", profile.UserID).
		Msg("profile reconcile gave up, user left without a profile row")
}
