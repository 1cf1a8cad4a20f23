// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dgckit/go-dgc-verifier/internal/config"
	"github.com/dgckit/go-dgc-verifier/internal/gateway"
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/rules"
	"github.com/dgckit/go-dgc-verifier/internal/store"
	"github.com/dgckit/go-dgc-verifier/models"
)

// defaultMaxRetry is the retry budget used when the catalog carries no
// MAX_RETRY setting.
const defaultMaxRetry = 1

// syncController is the state machine behind revocation-list synchronization.
//
// One attempt is a strictly sequential pipeline: fetch server status, decide
// between no-op, fresh download and resume, then drive the chunk downloader
// until completion or a classified failure. The in-flight guard keeps the
// periodic timer from ever running two attempts concurrently; the cursor is
// written only by the single active attempt, but every write goes through
// the mutex because IsSynchronized reads it from the scan path.
type syncController struct {
	gateway     gateway.Gateway
	revocations store.RevocationRepository
	syncState   store.SyncStateRepository
	downloader  *chunkDownloader
	catalog     *rules.Catalog
	cfg         config.Sync
	logger      *logger.Logger

	mu                sync.Mutex
	delegate          Delegate
	initialized       bool
	enabled           bool
	isDownloading     bool
	firstRun          bool
	downloadConfirmed bool

	serverStatus        *models.ServerStatus
	progress            models.SyncProgress
	maxRetry            int
	statusFailCounter   int
	downloadFailCounter int

	now func() time.Time
}

func NewSyncController(
	gw gateway.Gateway,
	revocations store.RevocationRepository,
	syncState store.SyncStateRepository,
	catalog *rules.Catalog,
	cfg config.Sync,
	logger *logger.Logger,
) SyncController {
	return &syncController{
		gateway:     gw,
		revocations: revocations,
		syncState:   syncState,
		downloader:  newChunkDownloader(gw, revocations, syncState, logger),
		catalog:     catalog,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Initialize implements [SyncController].
func (c *syncController) Initialize(ctx context.Context, delegate Delegate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.catalog.BoolValue(rules.SettingSyncActive, true) {
		c.logger.Info().
			Str("func", "syncController.Initialize").
			Msg("revocation-list synchronization disabled by catalog")
		c.initialized = true
		c.enabled = false
		return nil
	}

	progress, err := c.syncState.GetProgress(ctx)
	if err != nil {
		return fmt.Errorf("load persisted sync cursor: %w", err)
	}

	c.delegate = delegate
	c.progress = progress
	c.maxRetry = c.catalog.IntValue(rules.SettingMaxRetry, defaultMaxRetry)
	c.statusFailCounter = c.maxRetry
	c.downloadFailCounter = c.maxRetry
	c.firstRun = true
	c.enabled = true
	c.initialized = true

	c.logger.Info().
		Str("func", "syncController.Initialize").
		Int64("current_version", progress.CurrentVersion).
		Int("max_retry", c.maxRetry).
		Msg("sync controller initialized")

	return nil
}

// Trigger implements [SyncController].
func (c *syncController) Trigger(ctx context.Context) {
	c.mu.Lock()
	if !c.initialized || !c.enabled || c.isDownloading {
		c.mu.Unlock()
		return
	}

	syncEnabled := c.catalog.BoolValue(rules.SettingSyncActive, true)
	if !((c.fetchOutdated(ctx) && syncEnabled) || c.firstRun) {
		c.mu.Unlock()
		return
	}

	c.firstRun = false
	c.isDownloading = true
	c.mu.Unlock()

	defer c.setIdle()
	c.attempt(ctx)
}

// StartDownload implements [SyncController].
func (c *syncController) StartDownload(ctx context.Context) {
	c.mu.Lock()
	if !c.initialized || !c.enabled || c.isDownloading {
		c.mu.Unlock()
		return
	}
	c.firstRun = false
	c.isDownloading = true
	c.mu.Unlock()

	defer c.setIdle()

	if c.serverStatus == nil {
		c.attempt(ctx)
		return
	}

	if c.needsUserConfirmation(*c.serverStatus) {
		c.notify(models.SyncUserInteractionRequired)
		return
	}

	c.downloadChunks(ctx)
}

// SetDownloadConfirmed implements [SyncController].
func (c *syncController) SetDownloadConfirmed(confirmed bool) {
	c.mu.Lock()
	c.downloadConfirmed = confirmed
	c.mu.Unlock()
}

// IsSynchronized implements [SyncController].
func (c *syncController) IsSynchronized(_ context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress.CurrentVersion > 0 && c.progress.NoPendingDownload()
}

// attempt runs one synchronization pass. The caller owns the in-flight
// guard.
func (c *syncController) attempt(ctx context.Context) {
	status, err := c.gateway.FetchRevocationStatus(ctx, c.progress)
	if err != nil {
		c.handleStatusError(ctx, err)
		return
	}

	c.statusFailCounter = c.maxRetry
	if err = c.syncState.SaveLastFetch(ctx, c.now()); err != nil {
		c.logger.Err(err).
			Str("func", "syncController.attempt").
			Msg("failed to persist last fetch time")
	}
	c.serverStatus = &status

	if status.Version == c.progress.CurrentVersion {
		c.serverStatus = nil
		c.notify(models.SyncCompleted)
		return
	}

	if c.progress.NoPendingDownload() {
		c.startFreshDownload(ctx, status)
		return
	}

	c.resumeDownload(ctx, status)
}

func (c *syncController) startFreshDownload(ctx context.Context, status models.ServerStatus) {
	c.setProgress(models.NewSyncProgress(c.progress.CurrentVersion, status))
	if err := c.syncState.SaveProgress(ctx, c.progress); err != nil {
		c.logger.Err(err).
			Str("func", "syncController.startFreshDownload").
			Msg("failed to persist fresh cursor")
		c.errorFlow()
		return
	}

	if c.needsUserConfirmation(status) {
		c.notify(models.SyncUserInteractionRequired)
		return
	}

	c.downloadChunks(ctx)
}

// resumeDownload decides what to do with a cycle interrupted mid-download. A
// chunk-size or version mismatch means the persisted cursor is stale: the
// whole download restarts at chunk 1 from a fresh status. A consistent
// cursor just waits for an explicit resume.
func (c *syncController) resumeDownload(ctx context.Context, status models.ServerStatus) {
	sameChunkSize := c.progress.SizeSingleChunkInBytes == status.SizeSingleChunkInBytes
	sameRequestedVersion := c.progress.RequestedVersion == status.Version

	if !sameChunkSize || !sameRequestedVersion {
		c.logger.Warn().
			Str("func", "syncController.resumeDownload").
			Int64("persisted_version", c.progress.RequestedVersion).
			Int64("server_version", status.Version).
			Msg("persisted cursor is stale, restarting download")
		c.cleanAndRetry(ctx)
		return
	}

	if c.progress.CurrentChunk > models.FirstChunk {
		c.notify(models.SyncPaused)
		return
	}
	c.notify(models.SyncDownloadReady)
}

func (c *syncController) downloadChunks(ctx context.Context) {
	c.notify(models.SyncDownloading)

	for !c.progress.ChunksCompleted() {
		next, err := c.downloader.DownloadNext(ctx, c.progress)
		if err != nil {
			c.classifyChunkError(ctx, err)
			return
		}
		c.setProgress(next)
		c.downloadFailCounter = c.maxRetry
	}

	c.completeDownload(ctx)
}

// classifyChunkError maps a chunk failure to the retry, pause, or error
// flow. 400-407 and version mismatches are treated as transient; a timeout
// is a pause point when the network is still reachable; anything else is
// terminal for this attempt.
func (c *syncController) classifyChunkError(ctx context.Context, err error) {
	if errors.Is(err, ErrVersionMismatch) {
		c.handleRetry(ctx)
		return
	}

	if code, ok := gateway.HTTPStatus(err); ok && code >= http.StatusBadRequest && code < http.StatusRequestTimeout {
		c.handleRetry(ctx)
		return
	}

	if gateway.IsTimeout(err) {
		if c.gateway.IsReachable() {
			c.notify(models.SyncPaused)
		} else {
			c.notify(models.SyncNoConnection)
		}
		return
	}

	c.logger.Err(err).
		Str("func", "syncController.classifyChunkError").
		Msg("chunk download failed")
	c.errorFlow()
}

// completeDownload runs the terminal consistency guard: the locally stored
// revoked-count must match the server-reported total before completed is
// ever reported.
func (c *syncController) completeDownload(ctx context.Context) {
	if c.serverStatus == nil {
		c.errorFlow()
		return
	}

	count, err := c.revocations.Count(ctx)
	if err != nil {
		c.logger.Err(err).
			Str("func", "syncController.completeDownload").
			Msg("failed to count stored revocations")
		c.errorFlow()
		return
	}

	if count != c.serverStatus.TotalRevokedCount {
		c.logger.Warn().
			Str("func", "syncController.completeDownload").
			Int64("stored", count).
			Int64("expected", c.serverStatus.TotalRevokedCount).
			Msg("revoked count mismatch after download")
		c.handleRetry(ctx)
		return
	}

	completed := c.progress
	completed.Complete()
	c.setProgress(completed)
	if err = c.syncState.SaveProgress(ctx, completed); err != nil {
		c.logger.Err(err).
			Str("func", "syncController.completeDownload").
			Msg("failed to persist completed cursor")
	}

	c.downloadFailCounter = c.maxRetry
	c.serverStatus = nil

	c.logger.Info().
		Str("func", "syncController.completeDownload").
		Int64("version", c.progress.CurrentVersion).
		Int64("revoked_count", count).
		Msg("revocation list synchronized")

	c.notify(models.SyncCompleted)
}

// handleRetry spends one unit of the download retry budget. Exhaustion is
// terminal for the cycle: statusNetworkError when nothing was transferred,
// error otherwise. A remaining budget restarts the attempt from a fresh
// server status, never mid-chunk.
func (c *syncController) handleRetry(ctx context.Context) {
	c.downloadFailCounter--

	if c.downloadFailCounter < 0 {
		status := models.SyncError
		if c.progress.BytesTransferred() == 0 {
			status = models.SyncStatusNetworkError
		}
		c.clean(ctx)
		c.notify(status)
		return
	}

	c.cleanAndRetry(ctx)
}

// handleStatusError spends one unit of the status retry budget. A terminal
// failure (budget exhausted, timeout, or offline) only surfaces
// statusNetworkError: the local revocation set and the persisted cursor say
// nothing about a failed poll and stay untouched, so a completed list keeps
// serving scans and an interrupted cycle stays resumable.
func (c *syncController) handleStatusError(ctx context.Context, err error) {
	c.statusFailCounter--

	c.logger.Err(err).
		Str("func", "syncController.handleStatusError").
		Int("remaining_retries", c.statusFailCounter).
		Msg("status fetch failed")

	if c.statusFailCounter < 0 || gateway.IsTimeout(err) || !c.gateway.IsReachable() {
		c.serverStatus = nil
		c.notify(models.SyncStatusNetworkError)
		return
	}

	c.cleanAndRetry(ctx)
}

func (c *syncController) cleanAndRetry(ctx context.Context) {
	c.clean(ctx)
	c.attempt(ctx)
}

// setProgress replaces the cursor under the mutex. The active attempt is the
// only writer; the lock pairs the write with concurrent IsSynchronized reads.
func (c *syncController) setProgress(progress models.SyncProgress) {
	c.mu.Lock()
	c.progress = progress
	c.mu.Unlock()
}

// clean discards every trace of the current cycle, persisted cursor and
// stored hashes included, so the next attempt starts from scratch.
func (c *syncController) clean(ctx context.Context) {
	c.serverStatus = nil
	c.setProgress(models.SyncProgress{})

	if err := c.syncState.ClearProgress(ctx); err != nil {
		c.logger.Err(err).
			Str("func", "syncController.clean").
			Msg("failed to clear persisted cursor")
	}
	if err := c.revocations.Clear(ctx); err != nil {
		c.logger.Err(err).
			Str("func", "syncController.clean").
			Msg("failed to clear revocation store")
	}
}

func (c *syncController) errorFlow() {
	c.serverStatus = nil
	c.notify(models.SyncError)
}

// fetchOutdated reports whether the last successful status fetch is older
// than the staleness window. An unreadable or never-written timestamp counts
// as outdated.
func (c *syncController) fetchOutdated(ctx context.Context) bool {
	lastFetch, err := c.syncState.GetLastFetch(ctx)
	if err != nil {
		return true
	}
	return c.now().Sub(lastFetch) >= c.cfg.StalenessWindow
}

func (c *syncController) needsUserConfirmation(status models.ServerStatus) bool {
	c.mu.Lock()
	confirmed := c.downloadConfirmed
	c.mu.Unlock()
	return status.TotalSizeInBytes > c.cfg.AutomaticMaxSizeBytes && !confirmed
}

func (c *syncController) setIdle() {
	c.mu.Lock()
	c.isDownloading = false
	c.mu.Unlock()
}

func (c *syncController) notify(status models.SyncStatus) {
	c.mu.Lock()
	delegate := c.delegate
	c.mu.Unlock()

	if delegate != nil {
		delegate.StatusDidChange(status)
	}
}
