package database

import (
	"testing"

	"hopa-consensus/config"
	"hopa-consensus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: ":memory:"}

	db, err := Connect(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))
	for _, m := range models.AllConsensusModels() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestConnectRedisDisabled(t *testing.T) {
	RedisClient = nil
	require.NoError(t, ConnectRedis(&config.Config{}))
	assert.Nil(t, RedisClient)
}
