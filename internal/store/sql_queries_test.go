// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildConversationQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()

	query, _, err := buildConversationQuery(ctx, 1, 2, 0)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from messages")
	require.Contains(t, q, "where")
	require.Contains(t, q, "sender_id")
	require.Contains(t, q, "receiver_id")
	require.Contains(t, q, "deleted")
	require.Contains(t, q, "order by created_at asc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$4")

	// columns presence (subset / key columns)
	require.Contains(t, q, "ciphertext")
	require.Contains(t, q, "iv")
	require.Contains(t, q, "auth_tag")
	require.Contains(t, q, "hmac")
	require.Contains(t, q, "media_id")
}

func Test_buildConversationQuery(t *testing.T) {
	tests := []struct {
		name       string
		first      int64
		second     int64
		limit      uint64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: both directions with pair args in order",
			first:  1,
			second: 2,
			limit:  0,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				// OR of the two directed pairs.
				require.Contains(t, q, " or ")

				// Args: (1,2) then (2,1) then the deleted filter.
				require.Len(t, args, 5)
				assert.Equal(t, int64(1), args[0])
				assert.Equal(t, int64(2), args[1])
				assert.Equal(t, int64(2), args[2])
				assert.Equal(t, int64(1), args[3])
				assert.Equal(t, false, args[4])
			},
		},
		{
			name:   "success: zero limit omits LIMIT clause",
			first:  5,
			second: 6,
			limit:  0,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, strings.ToLower(query), "limit")
			},
		},
		{
			name:   "success: positive limit adds LIMIT clause",
			first:  5,
			second: 6,
			limit:  50,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, strings.ToLower(query), "limit 50")
			},
		},
		{
			name:   "success: same user on both sides still builds",
			first:  9,
			second: 9,
			limit:  0,
			checkQuery: func(t *testing.T, query string, args []any) {
				// buildConversationQuery does not validate identifiers.
				// Validation is a service-layer concern; this function only builds SQL.
				require.Len(t, args, 5)
				assert.Equal(t, int64(9), args[0])
				assert.Equal(t, int64(9), args[1])
			},
		},
		{
			name:   "success: idempotent for same inputs",
			first:  7,
			second: 8,
			limit:  10,
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildConversationQuery(context.Background(), 7, 8, 10)
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			query, args, err := buildConversationQuery(ctx, tt.first, tt.second, tt.limit)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildGroupFeedQuery_SQLContainsParts(t *testing.T) {
	tests := []struct {
		name       string
		groupID    int64
		limit      uint64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "success: group filter with newest-first ordering",
			groupID: 42,
			limit:   0,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from post_shares")
				require.Contains(t, q, "group_id")
				require.Contains(t, q, "order by created_at desc")
				require.Contains(t, query, "$1")

				require.Len(t, args, 1)
				require.Equal(t, int64(42), args[0])
			},
		},
		{
			name:    "success: positive limit adds LIMIT clause",
			groupID: 42,
			limit:   20,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, strings.ToLower(query), "limit 20")
			},
		},
		{
			name:    "success: all envelope columns selected",
			groupID: 1,
			limit:   0,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				cols := []string{
					"id", "post_id", "sender_id", "group_id", "ciphertext",
					"iv", "algorithm", "auth_tag", "hmac", "created_at",
				}
				for _, col := range cols {
					require.Contains(t, q, col, "query should contain column %q", col)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			query, args, err := buildGroupFeedQuery(ctx, tt.groupID, tt.limit)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUserHistoryQuery_SQLContainsParts(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		limit      uint64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: user filter with newest-first ordering",
			userID: 42,
			limit:  0,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from transactions")
				require.Contains(t, q, "user_id")
				require.Contains(t, q, "order by created_at desc")
				require.Contains(t, query, "$1")

				require.Len(t, args, 1)
				require.Equal(t, int64(42), args[0])
			},
		},
		{
			name:   "success: positive limit adds LIMIT clause",
			userID: 42,
			limit:  10,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, strings.ToLower(query), "limit 10")
			},
		},
		{
			name:   "success: idempotent for same inputs",
			userID: 99,
			limit:  5,
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildUserHistoryQuery(context.Background(), 99, 5)
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			query, args, err := buildUserHistoryQuery(ctx, tt.userID, tt.limit)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildOrphanMediaQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildOrphanMediaQuery(ctx, cutoff)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// join structure
	require.Contains(t, q, "from media_objects m")
	require.Contains(t, q, "left join messages")
	require.Contains(t, q, "messages.media_id = m.id")
	require.Contains(t, q, "messages.id is null")

	// cutoff filter
	require.Contains(t, q, "m.created_at <")
	require.Contains(t, query, "$1")

	require.Len(t, args, 1)
	require.Equal(t, cutoff, args[0])

	// metadata columns only; the blob itself never travels through SQL
	require.Contains(t, q, "m.blob_key")
	require.Contains(t, q, "m.content_type")
	require.Contains(t, q, "m.size_bytes")
	require.NotContains(t, q, "select *")
}
