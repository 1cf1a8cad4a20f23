package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dgckit/go-dgc-verifier/internal/config"
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/models"
)

const (
	drlStatusPath = "/v2/drl/check"
	drlChunkPath  = "/v2/drl"

	reachabilityTimeout = 3 * time.Second
)

type httpGateway struct {
	client      *resty.Client
	probeClient *resty.Client

	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway].
// It normalises and validates the base URL from gatewayCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A second client with a short timeout is kept for
// reachability probes.
//
// Returns an error if gatewayCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(gatewayCfg config.Gateway, logger *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(gatewayCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(gatewayCfg.RequestTimeout)

	probeClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(reachabilityTimeout)

	return &httpGateway{client: client, probeClient: probeClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchRevocationStatus implements [Gateway]. It GETs the status endpoint
// with the locally applied version as a query parameter so the server can
// decide between a snapshot and a delta target. Returns the decoded
// [models.ServerStatus]. Returns an error if the request, response mapping,
// or JSON decoding fails.
func (h *httpGateway) FetchRevocationStatus(ctx context.Context, progress models.SyncProgress) (models.ServerStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("version", strconv.FormatInt(progress.CurrentVersion, 10)).
		Get(drlStatusPath)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("revocation status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerStatus{}, err
	}

	var status models.ServerStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		h.logger.Err(err).
			Str("func", "httpGateway.FetchRevocationStatus").
			Msg("failed to decode revocation status response")
		return models.ServerStatus{}, fmt.Errorf("decode revocation status: %w", ErrMissingPayload)
	}

	return status, nil
}

// FetchRevocationChunk implements [Gateway]. It GETs one chunk of the given
// revocation-list version. The version/chunk pair is passed as query
// parameters; the server answers with either a snapshot or a delta payload.
// Returns [ErrMissingPayload] (wrapped) when a 2xx response body cannot be
// decoded.
func (h *httpGateway) FetchRevocationChunk(ctx context.Context, version, chunk int64) (models.RevocationChunk, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("version", strconv.FormatInt(version, 10)).
		SetQueryParam("chunk", strconv.FormatInt(chunk, 10)).
		Get(drlChunkPath)
	if err != nil {
		return models.RevocationChunk{}, fmt.Errorf("revocation chunk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevocationChunk{}, err
	}

	if len(resp.Body()) == 0 {
		return models.RevocationChunk{}, ErrMissingPayload
	}

	var drl models.RevocationChunk
	if err = json.Unmarshal(resp.Body(), &drl); err != nil {
		h.logger.Err(err).
			Str("func", "httpGateway.FetchRevocationChunk").
			Int64("version", version).
			Int64("chunk", chunk).
			Msg("failed to decode revocation chunk response")
		return models.RevocationChunk{}, fmt.Errorf("decode revocation chunk: %w", ErrMissingPayload)
	}

	return drl, nil
}

// IsReachable implements [Gateway]. It sends a HEAD request to the base URL
// with a short timeout; any HTTP answer counts as reachable, only transport
// failures count as offline.
func (h *httpGateway) IsReachable() bool {
	_, err := h.probeClient.R().Head("/")
	return err == nil
}
