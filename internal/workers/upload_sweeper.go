// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/models"
)

const minSweepInterval = time.Minute

// UploadSweeper removes temporary upload files that outlived their TTL.
// Uploads normally disappear right after they are pushed to the media host;
// the sweeper catches the ones left behind by crashes or aborted requests.
// Only files named with [models.UploadFilePrefix] are touched.
type UploadSweeper struct {
	dir      string
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewUploadSweeper builds a sweeper for cfg.UploadDir. It runs every quarter
// of cfg.UploadTTL, but not more often than once a minute.
func NewUploadSweeper(cfg config.Files, logger *logger.Logger) *UploadSweeper {
	interval := max(cfg.UploadTTL/4, minSweepInterval)

	logger.Debug().
		Str("dir", cfg.UploadDir).
		Dur("ttl", cfg.UploadTTL).
		Dur("interval", interval).
		Msg("creating upload sweeper")

	return &UploadSweeper{
		dir:      cfg.UploadDir,
		ttl:      cfg.UploadTTL,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once right away and then on every tick until ctx is done.
func (s *UploadSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if removed, err := s.Sweep(); err != nil {
			s.logger.Err(err).Str("dir", s.dir).Msg("error sweeping uploads")
		} else if removed > 0 {
			s.logger.Info().Int("removed", removed).Msg("stale uploads removed")
		}

		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("upload sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep removes every stale upload file in the directory and returns how
// many were deleted. Files that vanish mid-sweep are skipped.
func (s *UploadSweeper) Sweep() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	deadline := s.now().Add(-s.ttl)
	removed := 0
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), models.UploadFilePrefix) {
			continue
		}

		info, err := entry.Info()
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if info.ModTime().After(deadline) {
			continue
		}

		err = os.Remove(filepath.Join(s.dir, entry.Name()))
		switch {
		case err == nil:
			removed++
		case !errors.Is(err, os.ErrNotExist):
			errs = append(errs, err)
		}
	}

	return removed, errors.Join(errs...)
}
