// SPDX-License-Identifier: Apache-2.0

package store

const (
	containsRevokedHash = `
		SELECT EXISTS (
			SELECT 1
			FROM revoked_uvci
			WHERE hash = ?
		);`

	countRevokedHashes = `
		SELECT COUNT(*)
		FROM revoked_uvci;`

	clearRevokedHashes = `
		DELETE FROM revoked_uvci;`

	getSyncState = `
		SELECT
			current_version,
			requested_version,
			current_chunk,
			total_chunk,
			size_single_chunk_in_bytes,
			total_size_in_bytes,
			remaining_bytes
		FROM sync_state
		WHERE id = 1;`

	saveSyncState = `
		UPDATE sync_state SET
			current_version            = ?,
			requested_version          = ?,
			current_chunk              = ?,
			total_chunk                = ?,
			size_single_chunk_in_bytes = ?,
			total_size_in_bytes        = ?,
			remaining_bytes            = ?
		WHERE id = 1;`

	clearSyncState = `
		UPDATE sync_state SET
			current_version            = 0,
			requested_version          = 0,
			current_chunk              = 0,
			total_chunk                = 0,
			size_single_chunk_in_bytes = 0,
			total_size_in_bytes        = 0,
			remaining_bytes            = 0
		WHERE id = 1;`

	getLastFetch = `
		SELECT last_fetch
		FROM sync_state
		WHERE id = 1;`

	saveLastFetch = `
		UPDATE sync_state SET
			last_fetch = ?
		WHERE id = 1;`
)
