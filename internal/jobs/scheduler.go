package jobs

import (
	"context"
	"log"
	"time"

	"tendorai/internal/domain/review"

	"github.com/robfig/cron/v3"
)

// jobTimeout bounds each run so a stuck job can't pile up behind itself
const jobTimeout = 5 * time.Minute

// Scheduler runs the platform's recurring maintenance jobs
type Scheduler struct {
	cron    *cron.Cron
	reviews *review.Service
}

func NewScheduler(reviews *review.Service) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		reviews: reviews,
	}
}

// Start registers the jobs and kicks off the cron loop
func (s *Scheduler) Start() error {
	// nightly: drop unredeemed review invitations past their expiry
	if _, err := s.cron.AddFunc("15 3 * * *", s.purgeExpiredReviewRequests); err != nil {
		return err
	}

	// hourly: repair any drift in denormalized vendor ratings
	if _, err := s.cron.AddFunc("@hourly", s.refreshVendorRatings); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) purgeExpiredReviewRequests() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	purged, err := s.reviews.PurgeExpiredRequests(ctx)
	if err != nil {
		log.Printf("job=purge_review_requests error=%v", err)
		return
	}
	if purged > 0 {
		log.Printf("job=purge_review_requests purged=%d", purged)
	}
}

func (s *Scheduler) refreshVendorRatings() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.reviews.RefreshAllAggregates(ctx); err != nil {
		log.Printf("job=refresh_vendor_ratings error=%v", err)
	}
}
