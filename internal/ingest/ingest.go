// Package ingest watches an inbox directory for arrival report text files,
// runs them through the report parser and persists the results.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"arrivals-backend/config"
	"arrivals-backend/internal/model"
	"arrivals-backend/internal/notification"
	"arrivals-backend/internal/report"
	"arrivals-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
)

// ErrNoGuestRecords is returned when a report parses to zero guest records.
var ErrNoGuestRecords = errors.New("no guest records found")

// Service orchestrates the report ingestion process. It uses a Store for persistence.
type Service struct {
	cfg        *config.Config
	store      store.Store
	parser     *report.Parser
	workerPool *notification.WorkerPool
}

// NewService creates and initializes a new ingest service.
func NewService(cfg *config.Config, store store.Store) *Service {
	rules := report.Rules{
		NoiseMarkers:     cfg.Report.NoiseMarkers,
		NoisePrefixes:    cfg.Report.NoisePrefixes,
		StatusMarkers:    cfg.Report.StatusMarkers,
		MinPrimaryTokens: cfg.Report.MinPrimaryTokens,
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, store.DB(), &webpushOptions)

	return &Service{
		cfg:        cfg,
		store:      store,
		parser:     report.NewParser(rules),
		workerPool: workerPool,
	}
}

// Run starts the ingestion process in a loop. The worker pool is started even
// when directory ingestion is disabled, because reports submitted over the API
// still dispatch notification jobs to it.
func (s *Service) Run(ctx context.Context) {
	s.workerPool.Start(ctx)

	if !s.cfg.Ingest.Enabled {
		log.Println("Directory ingestion is disabled. Not starting.")
		return
	}
	log.Println("Starting ingest service...")

	s.ScanOnce(ctx)

	timer := time.NewTimer(s.cfg.Ingest.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Ingest service shutting down.")
			return
		case <-timer.C:
			s.ScanOnce(ctx)
			timer.Reset(s.cfg.Ingest.Interval)
		}
	}
}

// ScanOnce performs a single scan of the inbox directory, ingesting every
// text file it finds and moving processed files out of the way.
func (s *Service) ScanOnce(ctx context.Context) {
	entries, err := os.ReadDir(s.cfg.Ingest.InboxDir)
	if err != nil {
		log.Printf("Error reading inbox directory %q: %v", s.cfg.Ingest.InboxDir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		path := filepath.Join(s.cfg.Ingest.InboxDir, entry.Name())
		rpt, err := s.IngestFile(ctx, path)
		if err != nil {
			log.Printf("Error ingesting %q: %v", path, err)
			continue
		}
		log.Printf("Ingested %q: %d guest records from %d lines", entry.Name(), rpt.GuestCount, rpt.LineCount)

		if err := s.archiveFile(path); err != nil {
			log.Printf("Error archiving %q: %v", path, err)
		}
	}
}

// IngestFile reads a report text file and ingests its lines.
func (s *Service) IngestFile(ctx context.Context, path string) (*model.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	return s.IngestLines(ctx, filepath.Base(path), lines)
}

// IngestLines parses the given report lines and persists the resulting guest
// records as a new report. A notification job is dispatched on success.
func (s *Service) IngestLines(ctx context.Context, fileName string, lines []string) (*model.Report, error) {
	records := s.parser.Parse(lines)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoGuestRecords, fileName)
	}

	rpt := &model.Report{
		ID:         uuid.NewString(),
		FileName:   fileName,
		LineCount:  len(lines),
		GuestCount: len(records),
	}

	guests := make([]model.Guest, 0, len(records))
	for _, rec := range records {
		guests = append(guests, model.Guest{
			Tag:            rec.ID,
			LastName:       rec.LastName,
			RoomNumber:     rec.RoomNumber,
			NumberOfGuests: rec.NumberOfGuests,
			ArrivalDay:     rec.ArrivalDay,
			DepartureDay:   rec.DepartureDay,
			BookingCode:    rec.BookingCode,
		})
	}

	if err := s.store.SaveReport(ctx, rpt, guests); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	s.workerPool.Dispatch(rpt.ID)
	return rpt, nil
}

// archiveFile moves a processed file into the processed directory.
func (s *Service) archiveFile(path string) error {
	if err := os.MkdirAll(s.cfg.Ingest.ProcessedDir, 0o755); err != nil {
		return fmt.Errorf("failed to create processed directory: %w", err)
	}
	dest := filepath.Join(s.cfg.Ingest.ProcessedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to move processed file: %w", err)
	}
	return nil
}
