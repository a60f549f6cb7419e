package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
appName: mahjongd
httpPort: 8080
metricPort: 9090
log:
  level: info
database:
  mongo:
    url: mongodb://localhost:27017
    db: mahjong
    collection: scored_hands
    minPoolSize: 2
    maxPoolSize: 10
  redis:
    addr: localhost:6379
    db: 0
analysis:
  defaultTrials: 5000
  shantenCacheTTLSeconds: 3600
`

func TestInitPopulatesConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	require.NoError(t, Init(path))

	require.NotNil(t, Conf)
	require.Equal(t, "mahjongd", Conf.AppName)
	require.Equal(t, 8080, Conf.HttpPort)
	require.Equal(t, 9090, Conf.MetricPort)
	require.Equal(t, "info", Conf.Log.Level)
	require.Equal(t, "mongodb://localhost:27017", Conf.Database.Mongo.Url)
	require.Equal(t, "mahjong", Conf.Database.Mongo.Db)
	require.Equal(t, "localhost:6379", Conf.Database.Redis.Addr)
	require.Equal(t, 5000, Conf.Analysis.DefaultTrials)
	require.Equal(t, 3600, Conf.Analysis.ShantenCacheTTL)
}

func TestInitMissingFileErrors(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.Error(t, err)
}
