// SPDX-License-Identifier: Apache-2.0

package store

const (
	createSnapshotSchema = `
		CREATE TABLE IF NOT EXISTS artworks (
			id         TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			owner      TEXT NOT NULL,
			label      TEXT NOT NULL,
			status     TEXT NOT NULL
		);`

	clearSnapshot = `DELETE FROM artworks;`

	insertSnapshotArtwork = `
		INSERT INTO artworks (
			id,
			payload,
			created_at,
			owner,
			label,
			status
		) VALUES ($1, $2, $3, $4, $5, $6);`

	selectSnapshotArtworks = `
		SELECT
			id,
			payload,
			created_at,
			owner,
			label,
			status
		FROM artworks
		ORDER BY created_at DESC, id;`
)
