// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// ── buildListVerificationsQuery ──────────────────────────────────────────────

func TestBuildListVerificationsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListVerificationsQuery()

	require.NoError(t, err)
	assert.Contains(t, query, "FROM verifications")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListVerificationsQuery_SingleStatus(t *testing.T) {
	query, args, err := buildListVerificationsQuery(models.VerificationActive)

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE status")
	require.Len(t, args, 1)
	assert.Equal(t, "active", args[0])
}

func TestBuildListVerificationsQuery_MultipleStatuses(t *testing.T) {
	query, args, err := buildListVerificationsQuery(
		models.VerificationPending,
		models.VerificationActive,
	)

	require.NoError(t, err)

	// squirrel generates IN (?,?) for a slice.
	assert.Contains(t, query, "IN (?,?)")
	require.Len(t, args, 2)
	assert.Equal(t, "pending", args[0])
	assert.Equal(t, "active", args[1])
}

func TestBuildListVerificationsQuery_SelectsExpectedColumns(t *testing.T) {
	query, _, err := buildListVerificationsQuery()

	require.NoError(t, err)
	for _, col := range []string{
		"id", "service_name", "phone_number", "status", "code",
		"capability", "created_at", "updated_at", "expires_at",
	} {
		assert.Contains(t, query, col)
	}
	assert.NotContains(t, query, "SELECT *")
}

// ── buildListNotificationsQuery ──────────────────────────────────────────────

func TestBuildListNotificationsQuery_NoLimit(t *testing.T) {
	query, args, err := buildListNotificationsQuery(0)

	require.NoError(t, err)
	assert.Contains(t, query, "FROM notifications")
	assert.NotContains(t, query, "LIMIT")
	assert.Empty(t, args)
}

func TestBuildListNotificationsQuery_WithLimit(t *testing.T) {
	query, _, err := buildListNotificationsQuery(25)

	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 25")
	assert.Contains(t, query, "ORDER BY created_at DESC")
}
