package store

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestDataSource_DSN_Substitution(t *testing.T) {
	ds := dataSource{
		User:     "u",
		Password: "p",
		Host:     "localhost:3306",
		URL:      "${user}:${password}@tcp(${host})/commerce?parseTime=true",
	}
	require.Equal(t, "u:p@tcp(localhost:3306)/commerce?parseTime=true", ds.DSN())

	dsn, err := ds.DSNChecked()
	require.NoError(t, err)
	require.Equal(t, "u:p@tcp(localhost:3306)/commerce?parseTime=true", dsn)
}

func TestDataSource_DSN_NoPlaceholders(t *testing.T) {
	ds := dataSource{URL: "file::memory:?cache=shared"}
	require.Equal(t, "file::memory:?cache=shared", ds.DSN())

	dsn, err := ds.DSNChecked()
	require.NoError(t, err)
	require.Equal(t, "file::memory:?cache=shared", dsn)
}

func TestDataSource_DSNChecked_MissingFields(t *testing.T) {
	for name, ds := range map[string]dataSource{
		"no url":      {},
		"no user":     {URL: "${user}@${host}/db", Host: "localhost"},
		"no password": {URL: "${user}:${password}@${host}/db", User: "u", Host: "localhost"},
		"no host":     {URL: "${user}@${host}/db", User: "u"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ds.DSNChecked()
			require.Error(t, err)
		})
	}
}

func TestRegisterDataSource_RequiresDriver(t *testing.T) {
	err := registerDataSource("broken", dataSource{URL: ":memory:"})
	require.Error(t, err)
}

func TestGetDS_DefaultDS_Close(t *testing.T) {
	// Mark config-driven registration as done so it cannot replace the
	// entries this test installs by hand.
	initOnce.Do(func() {})

	open := func() namedDB {
		raw, err := sql.Open("sqlite3", ":memory:")
		require.NoError(t, err)
		require.NoError(t, raw.Ping())
		return namedDB{DB: stdDB{DB: raw}, driver: "sqlite3"}
	}

	dsMu.Lock()
	dsRegistry[defaultDSName] = open()
	dsRegistry["replica"] = open()
	dsMu.Unlock()

	got, ok := DefaultDS()
	require.True(t, ok)
	require.NotNil(t, got)

	driver, ok := DriverOf("")
	require.True(t, ok)
	require.Equal(t, "sqlite3", driver)

	got2, ok2 := GetDS("replica")
	require.True(t, ok2)
	require.NotNil(t, got2)

	require.NoError(t, CloseDataSource("replica"))
	_, ok3 := GetDS("replica")
	require.False(t, ok3)

	require.NoError(t, CloseAllDataSources())
	dsMu.RLock()
	require.Empty(t, dsRegistry)
	dsMu.RUnlock()
}
