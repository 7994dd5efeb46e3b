package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

// TestConfig_Enabled はドライバー設定の有無を判定できることを検証します。
func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Driver: DriverNone}.Enabled())
	assert.True(t, Config{Driver: DriverSQLite}.Enabled())
	assert.True(t, Config{Driver: DriverPostgres}.Enabled())
}

// TestOpenerFor_Unsupported は未対応のドライバーでエラーが返されることを検証します。
func TestOpenerFor_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := OpenerFor("mysql")
	assert.Error(t, err)
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, time.Millisecond, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, 5*time.Millisecond, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後に最後のエラーが返されることを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, cause
	}

	_, err := ConnectWithRetry("test-dsn", 50*time.Millisecond, 10*time.Millisecond, opener)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.GreaterOrEqual(t, attempts, 2)
}

// TestOpenDB_SQLiteWithMigrations はSQLiteで接続しマイグレーションが実行されることを検証します。
func TestOpenDB_SQLiteWithMigrations(t *testing.T) {
	t.Parallel()

	db, err := OpenDB(Config{Driver: DriverSQLite, DSN: ":memory:", RunMigrations: true}, &widget{})
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&widget{}))
	require.NoError(t, db.Create(&widget{Name: "gear"}).Error)
}

// TestOpenDB_SkipsMigrations はRunMigrationsがfalseの場合にテーブルが作成されないことを検証します。
func TestOpenDB_SkipsMigrations(t *testing.T) {
	t.Parallel()

	db, err := OpenDB(Config{Driver: DriverSQLite, DSN: ":memory:"}, &widget{})
	require.NoError(t, err)

	assert.False(t, db.Migrator().HasTable(&widget{}))
}

// TestOpenDB_InvalidConfig は設定不備の場合にエラーが返されることを検証します。
func TestOpenDB_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no driver", Config{}},
		{"none driver", Config{Driver: DriverNone, DSN: "x"}},
		{"empty dsn", Config{Driver: DriverSQLite}},
		{"unknown driver", Config{Driver: "oracle", DSN: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, err := OpenDB(tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, db)
		})
	}
}
