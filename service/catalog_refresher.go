package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CatalogRefresher keeps the catalogue cache warm on a cron schedule.
type CatalogRefresher struct {
	catalog *CatalogService
	cron    *cron.Cron
	timeout time.Duration
}

func NewCatalogRefresher(catalog *CatalogService, timeout time.Duration) *CatalogRefresher {
	return &CatalogRefresher{
		catalog: catalog,
		cron:    cron.New(),
		timeout: timeout,
	}
}

// Start runs one refresh immediately and then on every tick of schedule.
func (r *CatalogRefresher) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.Refresh); err != nil {
		return err
	}
	go r.Refresh()
	r.cron.Start()
	log.Printf("[CATALOG CRON] refresh scheduled: %s", schedule)
	return nil
}

func (r *CatalogRefresher) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.catalog.Warm(ctx); err != nil {
		log.Printf("Warning: catalogue refresh incomplete: %v", err)
		return
	}
	log.Println("[CATALOG CRON] catalogue cache refreshed")
}

// Stop waits for a running refresh to finish.
func (r *CatalogRefresher) Stop() {
	<-r.cron.Stop().Done()
}
