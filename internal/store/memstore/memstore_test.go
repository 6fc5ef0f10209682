package memstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todocli/internal/model"
	"github.com/idilsaglam/todocli/internal/store"
)

func TestEmptyStoreIsReadError(t *testing.T) {
	st, err := New().Load()
	assert.Empty(t, st.Entries)
	var readErr *store.ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestGarbageIsParseError(t *testing.T) {
	m := New()
	m.Set([]byte("{{"))
	st, err := m.Load()
	assert.Empty(t, st.Entries)
	var parseErr *store.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestSaveLoadDoesNotShareMaps(t *testing.T) {
	m := New()
	st := model.NewState()
	st.Entries["a"] = model.Entry{Checked: true}
	require.NoError(t, m.Save(st))

	st.Entries["b"] = model.Entry{}

	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]model.Entry{"a": {Checked: true}}, got.Entries)
	assert.Equal(t, `{"entries":{"a":{"checked":true}}}`, string(m.Bytes()))
	assert.Equal(t, 1, m.Saves)
}

func TestSaveErr(t *testing.T) {
	boom := errors.New("disk full")
	m := &Store{SaveErr: boom}

	err := m.Save(model.NewState())
	var writeErr *store.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, m.Saves)
}
