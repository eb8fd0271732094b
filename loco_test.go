package loco_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loco "github.com/ofabianomartins/loco-factory"
)

func TestSaverFunc(t *testing.T) {
	type draft struct{ Name string }
	type record struct {
		ID   int64
		Name string
	}
	s := loco.SaverFunc[*draft, *record](func(ctx context.Context, d *draft) (*record, error) {
		return &record{ID: 1, Name: d.Name}, nil
	})
	r, err := s.Save(context.Background(), &draft{Name: "x"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, r.ID)
	assert.Equal(t, "x", r.Name)
}

func TestEmbeddedFactoryDefaults(t *testing.T) {
	var f loco.Factory
	assert.Nil(t, f.Target())
	assert.Nil(t, f.Staging())
	assert.Nil(t, f.Fields())
}

func TestUsageError(t *testing.T) {
	err := loco.NewUsageError("User", "Build")
	assert.ErrorIs(t, err, loco.ErrBuilderConsumed)
	assert.True(t, loco.IsUsageError(err))
	assert.Equal(t, "User", err.Factory())
	assert.Equal(t, "Build", err.Op())
	assert.Contains(t, err.Error(), "consumed UserBuilder")
	assert.False(t, loco.IsUsageError(nil))
	assert.False(t, loco.IsUsageError(errors.New("other")))
}

func TestDefaultError(t *testing.T) {
	cause := errors.New("rng exhausted")
	err := loco.NewDefaultError("Post", "slug", cause)
	assert.ErrorIs(t, err, loco.ErrDefaultFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, loco.IsDefaultError(err))
	assert.Contains(t, err.Error(), `field "slug"`)
	assert.False(t, loco.IsDefaultError(nil))
}
