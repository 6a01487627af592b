package target

import (
	"context"
	"testing"

	errorc "storyhub/pkg/core/err"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	Counter
	ids map[string]bool
}

func (s stubCounter) Exists(_ context.Context, id string) (bool, error) {
	return s.ids[id], nil
}

func TestFromPath(t *testing.T) {
	for in, want := range map[string]Type{"stories": Story, "story": Story, "tracks": Track, "track": Track} {
		got, err := FromPath(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FromPath("albums")
	assert.True(t, errorc.IsValidation(err))
}

func TestRegistryMustExist(t *testing.T) {
	reg := Registry{Story: stubCounter{ids: map[string]bool{"s1": true}}}
	ctx := context.Background()

	_, err := reg.MustExist(ctx, Story, "s1")
	require.NoError(t, err)

	_, err = reg.MustExist(ctx, Story, "s2")
	assert.True(t, errorc.IsNotFound(err))

	_, err = reg.MustExist(ctx, Track, "t1")
	assert.True(t, errorc.IsValidation(err))
}
