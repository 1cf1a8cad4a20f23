// SPDX-License-Identifier: Apache-2.0

// Package gateway provides the outbound transport layer for revocation-list
// synchronization.
//
// The primary abstraction is [Gateway], which decouples the sync controller
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGateway]) built on resty.
//
// Transport failures are mapped by mapHTTPError to [*HTTPError] values so
// that callers can classify them with [HTTPStatus] and [IsTimeout] without
// knowing the transport (e.g. the 400–407 transient band, 408 pause point).
package gateway

import (
	"context"

	"github.com/dgckit/go-dgc-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines transport-agnostic communication with the certificate
// backend serving the chunked revocation list. Implementations are
// responsible for serialisation and for mapping transport-level errors to
// the typed values defined in this package.
type Gateway interface {
	// FetchRevocationStatus returns the current server-side revocation-list
	// version and chunking metadata. The local progress is sent along so the
	// server can answer with a delta-friendly target. Returns an error if
	// the request fails or the server responds with a non-2xx status.
	FetchRevocationStatus(ctx context.Context, progress models.SyncProgress) (models.ServerStatus, error)

	// FetchRevocationChunk returns chunk number chunk of revocation-list
	// version version. Returns a [*HTTPError] for non-2xx responses and
	// [ErrMissingPayload] when a 2xx response carries no decodable body.
	FetchRevocationChunk(ctx context.Context, version, chunk int64) (models.RevocationChunk, error)

	// IsReachable reports whether the backend looks reachable right now.
	// Used to distinguish pause-and-resume conditions from hard offline.
	IsReachable() bool
}
