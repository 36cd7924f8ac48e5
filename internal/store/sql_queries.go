// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

const (
	saveSession = `
		INSERT INTO session (id, user_id, token, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	loadSession = `
		SELECT user_id, token
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`

	saveVerification = `
		INSERT INTO verifications (
			id,
			service_name,
			phone_number,
			status,
			code,
			capability,
			created_at,
			updated_at,
			expires_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			service_name = excluded.service_name,
			phone_number = excluded.phone_number,
			status       = excluded.status,
			code         = excluded.code,
			capability   = excluded.capability,
			updated_at   = excluded.updated_at,
			expires_at   = excluded.expires_at;`

	getVerification = `
		SELECT
			id,
			service_name,
			phone_number,
			status,
			code,
			capability,
			created_at,
			updated_at,
			expires_at
		FROM verifications
		WHERE id = ?;`

	deleteVerification = `DELETE FROM verifications WHERE id = ?;`

	saveMessage = `
		INSERT INTO messages (verification_id, sender, text, received_at)
		VALUES (?, ?, ?, ?);`

	getMessages = `
		SELECT verification_id, sender, text, received_at
		FROM messages
		WHERE verification_id = ?
		ORDER BY received_at;`

	saveNotification = `
		INSERT INTO notifications (title, message, severity, created_at)
		VALUES (?, ?, ?, ?);`
)

// buildListVerificationsQuery assembles the listing query; the status filter
// is optional, which is why this one goes through squirrel instead of a const.
func buildListVerificationsQuery(statuses ...models.VerificationStatus) (string, []any, error) {
	builder := sq.Select(
		"id",
		"service_name",
		"phone_number",
		"status",
		"code",
		"capability",
		"created_at",
		"updated_at",
		"expires_at",
	).
		From("verifications").
		OrderBy("created_at DESC")

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		builder = builder.Where(sq.Eq{"status": values})
	}

	return builder.ToSql()
}

// buildListNotificationsQuery assembles the feed query with an optional row
// limit.
func buildListNotificationsQuery(limit int) (string, []any, error) {
	builder := sq.Select("title", "message", "severity", "created_at").
		From("notifications").
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}
