package migrations

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	driver, err := iofs.New(files, ".")
	require.NoError(t, err)
	defer driver.Close()

	version, err := driver.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, _, err := driver.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	for _, table := range []string{"users", "collections", "products", "sizes", "nfts", "nft_events"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}

	down, _, err := driver.ReadDown(version)
	require.NoError(t, err)
	defer down.Close()
}
