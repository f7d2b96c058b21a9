package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bffgym/pos-be/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	in := []models.Member{{ID: "1", Name: "Ann", Credits: 3}}
	require.NoError(t, s.Save(KeyMembers, in))

	var out []models.Member
	require.NoError(t, s.Load(KeyMembers, &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKeyLeavesDefault(t *testing.T) {
	s := NewMemoryStore()

	out := []models.Member{{ID: "keep"}}
	require.NoError(t, s.Load("bff.never-written", &out))
	assert.Equal(t, "keep", out[0].ID)
}

func TestGormStoreRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVRecord{}))

	s := NewGormStore(db)

	require.NoError(t, s.Save(KeySelectedSession, "Monday 6:00 AM"))

	var selected string
	require.NoError(t, s.Load(KeySelectedSession, &selected))
	assert.Equal(t, "Monday 6:00 AM", selected)

	// Save is a full rewrite of the key.
	require.NoError(t, s.Save(KeySelectedSession, "Saturday 8:00 AM"))
	require.NoError(t, s.Load(KeySelectedSession, &selected))
	assert.Equal(t, "Saturday 8:00 AM", selected)

	// Unwritten keys leave the destination untouched.
	other := "unchanged"
	require.NoError(t, s.Load(KeyMembers, &other))
	assert.Equal(t, "unchanged", other)
}
