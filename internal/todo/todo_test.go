package todo

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todocli/internal/model"
)

func stateOf(entries map[string]bool) *model.State {
	s := model.NewState()
	for n, c := range entries {
		s.Entries[n] = model.Entry{Checked: c}
	}
	return s
}

func TestListVisibility(t *testing.T) {
	s := stateOf(map[string]bool{"b done": true, "a open": false, "c open": false})

	tests := []struct {
		name          string
		hideChecked   bool
		hideUnchecked bool
		want          []Line
	}{
		{
			name: "everything",
			want: []Line{{"a open", false}, {"b done", true}, {"c open", false}},
		},
		{
			name:        "hide checked",
			hideChecked: true,
			want:        []Line{{"a open", false}, {"c open", false}},
		},
		{
			name:          "hide unchecked",
			hideUnchecked: true,
			want:          []Line{{"b done", true}},
		},
		{
			name:          "hide both",
			hideChecked:   true,
			hideUnchecked: true,
			want:          nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, List(s, tt.hideChecked, tt.hideUnchecked))
		})
	}
}

func TestListIsPureAndRepeatable(t *testing.T) {
	s := stateOf(map[string]bool{"x": true, "y": false})
	before := s.Clone()

	first := List(s, false, true)
	second := List(s, false, true)
	assert.Equal(t, first, second)
	assert.Equal(t, before.Entries, s.Entries)
}

func TestListEmptyState(t *testing.T) {
	assert.Empty(t, List(model.NewState(), false, false))
	assert.Empty(t, List(&model.State{}, false, false))
}

// Re-adding resets the checked flag. This is intended.
func TestAddOverwriteResetsChecked(t *testing.T) {
	s := stateOf(map[string]bool{"milk": true})

	Add(s, "milk")
	assert.Equal(t, model.Entry{Checked: false}, s.Entries["milk"])

	Add(s, "milk")
	assert.Equal(t, model.Entry{Checked: false}, s.Entries["milk"])
	assert.Len(t, s.Entries, 1)
}

func TestAddOnZeroState(t *testing.T) {
	s := &model.State{}
	Add(s, "milk")
	assert.Contains(t, s.Entries, "milk")
}

func TestToggleInvolution(t *testing.T) {
	for _, start := range []bool{true, false} {
		s := stateOf(map[string]bool{"milk": start, "bread": true})
		before := s.Clone()

		require.NoError(t, Toggle(s, "milk"))
		assert.Equal(t, !start, s.Entries["milk"].Checked)
		require.NoError(t, Toggle(s, "milk"))
		assert.Equal(t, before.Entries, s.Entries)
	}
}

func TestToggleMissing(t *testing.T) {
	s := stateOf(map[string]bool{"milk": false})
	before := s.Clone()

	err := Toggle(s, "bread")
	require.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "bread", nf.Name)
	assert.Equal(t, before.Entries, s.Entries)
	assert.NotContains(t, s.Entries, "bread")
}

func TestRemove(t *testing.T) {
	s := stateOf(map[string]bool{"milk": true, "bread": false})
	require.NoError(t, Remove(s, "milk"))
	assert.Equal(t, map[string]model.Entry{"bread": {}}, s.Entries)
}

func TestRemoveTwiceReportsNotFoundBothTimes(t *testing.T) {
	s := stateOf(map[string]bool{"bread": false})

	for i := 0; i < 2; i++ {
		err := Remove(s, "milk")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, map[string]model.Entry{"bread": {}}, s.Entries)
	}
}

func TestToggleInvolutionRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		s := model.NewState()
		n := 1 + r.Intn(10)
		for j := 0; j < n; j++ {
			s.Entries[fmt.Sprintf("entry-%d", r.Intn(1000))] = model.Entry{Checked: r.Intn(2) == 0}
		}
		name := s.Names()[r.Intn(len(s.Entries))]
		before := s.Clone()

		require.NoError(t, Toggle(s, name))
		require.NoError(t, Toggle(s, name))
		assert.Equal(t, before.Entries, s.Entries)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := error(&NotFoundError{Name: "milk"})
	assert.Equal(t, "no such entry: milk", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, errors.New("no such entry")))
}
