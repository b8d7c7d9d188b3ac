package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySourcePaging(t *testing.T) {
	src := NewMemorySource(SeedForms(47))
	ctx := context.Background()

	q := Query{Subject: "pat-1", Order: OrderUpdatedDesc, Cursor: Cursor{Page: 0, Size: 20}}

	page1, err := src.FetchPage(ctx, q)
	require.NoError(t, err)
	require.Len(t, page1.Forms, 20)
	require.True(t, page1.HasMore)
	require.Equal(t, 1, page1.Next.Page)

	q.Cursor = page1.Next
	page2, err := src.FetchPage(ctx, q)
	require.NoError(t, err)
	require.Len(t, page2.Forms, 20)
	require.True(t, page2.HasMore)

	q.Cursor = page2.Next
	page3, err := src.FetchPage(ctx, q)
	require.NoError(t, err)
	require.Len(t, page3.Forms, 7)
	require.False(t, page3.HasMore)

	// Past the end: empty page, still no more.
	q.Cursor = page3.Next
	page4, err := src.FetchPage(ctx, q)
	require.NoError(t, err)
	require.Empty(t, page4.Forms)
	require.False(t, page4.HasMore)
}

func TestMemorySourceZeroSizeReturnsEverything(t *testing.T) {
	src := NewMemorySource(SeedForms(33))

	page, err := src.FetchPage(context.Background(), Query{Cursor: Cursor{Size: 0}})
	require.NoError(t, err)
	require.Len(t, page.Forms, 33)
	require.False(t, page.HasMore)
}

func TestMemorySourceTermFilter(t *testing.T) {
	src := NewMemorySource(SeedForms(48))

	page, err := src.FetchPage(context.Background(), Query{
		Term:   "pain",
		Cursor: Cursor{Size: 50},
	})
	require.NoError(t, err)
	require.NotEmpty(t, page.Forms)
	for _, f := range page.Forms {
		require.Contains(t, f.Title, "Pain")
	}
}

func TestMemorySourceOrdering(t *testing.T) {
	src := NewMemorySource(SeedForms(12))

	page, err := src.FetchPage(context.Background(), Query{
		Order:  OrderUpdatedDesc,
		Cursor: Cursor{Size: 12},
	})
	require.NoError(t, err)
	for i := 1; i < len(page.Forms); i++ {
		require.False(t, page.Forms[i].UpdatedAt.After(page.Forms[i-1].UpdatedAt),
			"rows must be newest first")
	}
}

func TestMemorySourceFailNext(t *testing.T) {
	src := NewMemorySource(SeedForms(5))
	boom := errors.New("boom")
	src.FailNext(boom)

	_, err := src.FetchPage(context.Background(), Query{Cursor: Cursor{Size: 5}})
	require.ErrorIs(t, err, boom)

	// Failure is one-shot.
	page, err := src.FetchPage(context.Background(), Query{Cursor: Cursor{Size: 5}})
	require.NoError(t, err)
	require.Len(t, page.Forms, 5)
	require.Equal(t, 2, src.Fetches())
}

func TestFetchErrorUnwrap(t *testing.T) {
	boom := errors.New("boom")
	err := &FetchError{Query: Query{Subject: "pat-9"}, Err: boom}
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "pat-9")
}
