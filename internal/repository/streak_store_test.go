package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	loadQuery  = regexp.QuoteMeta(`SELECT key, value FROM app_state WHERE key IN ($1, $2);`)
	upsertStmt = regexp.QuoteMeta(`INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`)
)

func TestLoad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewStreakStoreWithConn(mock)
	ctx := context.Background()

	testCases := []struct {
		Desc            string
		Expected        *entity.StreakState
		ExpectedErrPart string
		MockPrepareFunc func()
	}{
		{
			Desc:     "first run returns zero state",
			Expected: &entity.StreakState{},
			MockPrepareFunc: func() {
				mock.ExpectQuery(loadQuery).
					WithArgs("streak_count", "last_verified_date").
					WillReturnRows(pgxmock.NewRows([]string{"key", "value"}))
			},
		},
		{
			Desc: "both scalars present",
			Expected: &entity.StreakState{
				Count: 4,
				LastVerified: func() *entity.Date {
					d := entity.NewDate(2024, time.May, 2)
					return &d
				}(),
			},
			MockPrepareFunc: func() {
				mock.ExpectQuery(loadQuery).
					WithArgs("streak_count", "last_verified_date").
					WillReturnRows(pgxmock.NewRows([]string{"key", "value"}).
						AddRow("streak_count", "4").
						AddRow("last_verified_date", "2024-05-02"))
			},
		},
		{
			Desc:     "blank stored date means no verified day",
			Expected: &entity.StreakState{Count: 0},
			MockPrepareFunc: func() {
				mock.ExpectQuery(loadQuery).
					WithArgs("streak_count", "last_verified_date").
					WillReturnRows(pgxmock.NewRows([]string{"key", "value"}).
						AddRow("streak_count", "0").
						AddRow("last_verified_date", ""))
			},
		},
		{
			Desc:            "corrupted count",
			ExpectedErrPart: "not an integer",
			MockPrepareFunc: func() {
				mock.ExpectQuery(loadQuery).
					WithArgs("streak_count", "last_verified_date").
					WillReturnRows(pgxmock.NewRows([]string{"key", "value"}).
						AddRow("streak_count", "many"))
			},
		},
		{
			Desc:            "corrupted date",
			ExpectedErrPart: "invalid",
			MockPrepareFunc: func() {
				mock.ExpectQuery(loadQuery).
					WithArgs("streak_count", "last_verified_date").
					WillReturnRows(pgxmock.NewRows([]string{"key", "value"}).
						AddRow("last_verified_date", "yesterday"))
			},
		},
		{
			Desc:            "query error",
			ExpectedErrPart: "loading streak state error",
			MockPrepareFunc: func() {
				mock.ExpectQuery(loadQuery).
					WithArgs("streak_count", "last_verified_date").
					WillReturnError(errors.New("connection lost"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			state, err := store.Load(ctx)
			if tc.ExpectedErrPart != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.ExpectedErrPart)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, state)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewStreakStoreWithConn(mock)
	ctx := context.Background()
	lastVerified := entity.NewDate(2024, time.May, 2)

	testCases := []struct {
		Desc            string
		State           *entity.StreakState
		ExpectedErrPart string
		MockPrepareFunc func()
	}{
		{
			Desc:  "both scalars rewritten in one transaction",
			State: &entity.StreakState{Count: 4, LastVerified: &lastVerified},
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(upsertStmt).WithArgs("streak_count", "4").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(upsertStmt).WithArgs("last_verified_date", "2024-05-02").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "nil verified date stored as blank",
			State: &entity.StreakState{Count: 0},
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(upsertStmt).WithArgs("streak_count", "0").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(upsertStmt).WithArgs("last_verified_date", "").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:            "upsert error rolls back",
			State:           &entity.StreakState{Count: 4, LastVerified: &lastVerified},
			ExpectedErrPart: "saving streak count error",
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(upsertStmt).WithArgs("streak_count", "4").
					WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := store.Save(ctx, tc.State)
			if tc.ExpectedErrPart != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.ExpectedErrPart)
				return
			}
			require.NoError(t, err)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
