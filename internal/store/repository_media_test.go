package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectOrphanMediaSQL = `SELECT m.id, m.sender_id, m.receiver_id, m.blob_key, m.content_type, m.size_bytes, m.created_at FROM media_objects m LEFT JOIN messages ON messages.media_id = m.id WHERE messages.id IS NULL AND m.created_at < $1 ORDER BY m.created_at ASC`

var mediaObjectColumns = []string{
	"id", "sender_id", "receiver_id", "blob_key",
	"content_type", "size_bytes", "created_at",
}

func TestSaveMediaObject(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	tests := []struct {
		name       string
		obj        models.MediaObject
		returnErr  error
		wantErr    error
		errContain string
	}{
		{
			name: "success",
			obj: models.MediaObject{
				SenderID:    1,
				ReceiverID:  2,
				BlobKey:     "0191d2a8-key",
				ContentType: "image/png",
				Size:        2048,
			},
		},
		{
			name: "error: blob key already taken",
			obj: models.MediaObject{
				SenderID:    1,
				ReceiverID:  2,
				BlobKey:     "0191d2a8-key",
				ContentType: "image/png",
				Size:        2048,
			},
			returnErr: pgError(pgerrcode.UniqueViolation),
			wantErr:   ErrDuplicateRecord,
		},
		{
			name: "error: query execution fails",
			obj: models.MediaObject{
				SenderID:    1,
				ReceiverID:  2,
				BlobKey:     "0191d2a8-key",
				ContentType: "image/png",
				Size:        2048,
			},
			returnErr:  errors.New("connection refused"),
			errContain: "error executing sql query: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewMediaRepository(newDBFromSQL(db), logger.Nop())
			ctx := testContext()

			expectation := mock.ExpectQuery("INSERT INTO media_objects").
				WithArgs(int64(1), int64(2), "0191d2a8-key", "image/png", int64(2048))

			if tc.returnErr != nil {
				expectation.WillReturnError(tc.returnErr)
			} else {
				expectation.WillReturnRows(
					sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))
			}

			obj := tc.obj
			err := repo.SaveMediaObject(ctx, &obj)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.errContain != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContain)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(3), obj.ID)
				assert.Equal(t, now, obj.CreatedAt)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMediaObjectByID(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMediaRepository(newDBFromSQL(db), logger.Nop())
		ctx := testContext()

		rows := sqlmock.
			NewRows(mediaObjectColumns).
			AddRow(int64(3), int64(1), int64(2), "0191d2a8-key", "image/png", int64(2048), now)

		mock.ExpectQuery("SELECT id, sender_id, receiver_id, blob_key").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		got, err := repo.GetMediaObjectByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "0191d2a8-key", got.BlobKey)
		assert.Equal(t, "image/png", got.ContentType)
		assert.Equal(t, int64(2048), got.Size)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: media object not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMediaRepository(newDBFromSQL(db), logger.Nop())
		ctx := testContext()

		mock.ExpectQuery("SELECT id, sender_id, receiver_id, blob_key").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetMediaObjectByID(ctx, 404)
		require.ErrorIs(t, err, ErrMediaNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: scan fails (wrong column count)", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMediaRepository(newDBFromSQL(db), logger.Nop())
		ctx := testContext()

		mock.ExpectQuery("SELECT id, sender_id, receiver_id, blob_key").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

		_, err := repo.GetMediaObjectByID(ctx, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan row")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteMediaObject(t *testing.T) {
	tests := []struct {
		name       string
		result     driver.Result
		execErr    error
		wantErr    error
		errContain string
	}{
		{
			name:   "success: one row deleted",
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:    "error: no row matched",
			result:  sqlmock.NewResult(0, 0),
			wantErr: ErrMediaNotFound,
		},
		{
			name:       "error: exec fails",
			execErr:    errors.New("connection refused"),
			errContain: "error executing sql query: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewMediaRepository(newDBFromSQL(db), logger.Nop())
			ctx := testContext()

			expectation := mock.ExpectExec("DELETE FROM media_objects").
				WithArgs(int64(3))
			if tc.execErr != nil {
				expectation.WillReturnError(tc.execErr)
			} else {
				expectation.WillReturnResult(tc.result)
			}

			err := repo.DeleteMediaObject(ctx, 3)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.errContain != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContain)
			default:
				require.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListOrphanMedia(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	cutoff := now.Add(-24 * time.Hour)

	type mockSetup struct {
		rows     [][]driver.Value
		queryErr error
		rowErr   error
	}

	type want struct {
		err       string
		resultLen int
	}

	tests := []struct {
		name string
		mock mockSetup
		want want
	}{
		{
			name: "success: two orphans oldest first",
			mock: mockSetup{
				rows: [][]driver.Value{
					{int64(1), int64(1), int64(2), "key-1", "image/png", int64(100), cutoff.Add(-2 * time.Hour)},
					{int64(2), int64(3), int64(4), "key-2", "video/mp4", int64(200), cutoff.Add(-time.Hour)},
				},
			},
			want: want{resultLen: 2},
		},
		{
			name: "success: nothing to sweep",
			mock: mockSetup{rows: [][]driver.Value{}},
			want: want{resultLen: 0},
		},
		{
			name: "error: query execution fails",
			mock: mockSetup{queryErr: errors.New("connection refused")},
			want: want{err: "error executing sql query: connection refused"},
		},
		{
			name: "error: rows iteration error",
			mock: mockSetup{
				rows: [][]driver.Value{
					{int64(1), int64(1), int64(2), "key-1", "image/png", int64(100), cutoff.Add(-2 * time.Hour)},
				},
				rowErr: errors.New("network interruption"),
			},
			want: want{err: "failed to scan rows: network interruption"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewMediaRepository(newDBFromSQL(db), logger.Nop())
			ctx := testContext()

			expectation := mock.ExpectQuery(regexp.QuoteMeta(selectOrphanMediaSQL)).
				WithArgs(cutoff)

			if tc.mock.queryErr != nil {
				expectation.WillReturnError(tc.mock.queryErr)
			} else {
				mockRows := sqlmock.NewRows(mediaObjectColumns)
				for i, r := range tc.mock.rows {
					mockRows.AddRow(r...)
					if tc.mock.rowErr != nil {
						mockRows.RowError(i, tc.mock.rowErr)
					}
				}
				expectation.WillReturnRows(mockRows)
			}

			result, err := repo.ListOrphanMedia(ctx, cutoff)

			if tc.want.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.want.err)
				assert.Nil(t, result)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}

			require.NoError(t, err)
			require.Len(t, result, tc.want.resultLen)

			for i, r := range tc.mock.rows {
				assert.Equal(t, r[0], result[i].ID, "ID[%d]", i)
				assert.Equal(t, r[3], result[i].BlobKey, "BlobKey[%d]", i)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
