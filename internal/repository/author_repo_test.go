package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRepo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	zoe := f.author(t, "Zoe")
	amy := f.author(t, "Amy")

	all, err := f.authors.ListAuthors(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Amy", all[0].Name)

	found, err := f.authors.ListAuthors(ctx, "zo")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, zoe.ID, found[0].ID)

	authors, err := f.authors.FindAuthors(ctx, []uint64{amy.ID, zoe.ID})
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	_, err = f.authors.FindAuthors(ctx, []uint64{amy.ID, 404})
	var refErr *ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "authors", refErr.Field)
	assert.Equal(t, []uint64{404}, refErr.IDs)
}
