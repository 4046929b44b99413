package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     int64
	Status string
}

func rowID(r row) int64 { return r.ID }

func constMsg(msg string) func(error) string {
	return func(error) string { return msg }
}

func TestList_StartsLoading(t *testing.T) {
	l := NewList(rowID)
	assert.Equal(t, StatusLoading, l.Status())
	assert.Nil(t, l.Items())
}

func TestLoad_SuccessReplacesWholesale(t *testing.T) {
	l := NewList(rowID)
	ctx := context.Background()

	err := l.Load(ctx, func(context.Context) ([]row, error) {
		return []row{{1, "pending"}, {2, "paid"}}, nil
	}, constMsg("Failed to load data."))
	require.NoError(t, err)
	require.Equal(t, StatusReady, l.Status())
	assert.Equal(t, []row{{1, "pending"}, {2, "paid"}}, l.Items())

	// a reload replaces everything, keeping server order
	err = l.Load(ctx, func(context.Context) ([]row, error) {
		return []row{{3, "confirmed"}}, nil
	}, constMsg("Failed to load data."))
	require.NoError(t, err)
	assert.Equal(t, []row{{3, "confirmed"}}, l.Items())
}

func TestLoad_FailureDiscardsPreviousItems(t *testing.T) {
	l := NewList(rowID)
	ctx := context.Background()

	require.NoError(t, l.Load(ctx, func(context.Context) ([]row, error) {
		return []row{{1, "pending"}}, nil
	}, constMsg("x")))

	boom := errors.New("boom")
	err := l.Load(ctx, func(context.Context) ([]row, error) {
		return nil, boom
	}, constMsg("Failed to load data."))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, StatusFailed, l.Status())
	assert.Equal(t, "Failed to load data.", l.ErrorMessage())
	assert.Nil(t, l.Items(), "no stale-data fallback")
}

func TestPatch_RewritesOnlyMatchingItem(t *testing.T) {
	l := NewList(rowID)
	require.NoError(t, l.Load(context.Background(), func(context.Context) ([]row, error) {
		return []row{{5, "pending"}, {7, "pending"}, {9, "paid"}}, nil
	}, constMsg("x")))

	before := l.Items()
	ok := l.Patch(7, func(r *row) { r.Status = "confirmed" })
	require.True(t, ok)

	after := l.Items()
	require.Len(t, after, 3)
	assert.Equal(t, []int64{5, 7, 9}, []int64{after[0].ID, after[1].ID, after[2].ID})
	assert.Equal(t, "pending", after[0].Status)
	assert.Equal(t, "confirmed", after[1].Status)
	assert.Equal(t, "paid", after[2].Status)
	assert.Equal(t, StatusReady, l.Status())

	// same backing array: untouched elements keep their identity
	assert.Equal(t, &before[0], &after[0])
}

func TestPatch_UnknownIDIsNoOp(t *testing.T) {
	l := NewList(rowID)
	require.NoError(t, l.Load(context.Background(), func(context.Context) ([]row, error) {
		return []row{{1, "pending"}}, nil
	}, constMsg("x")))

	ok := l.Patch(99, func(r *row) { r.Status = "confirmed" })
	assert.False(t, ok)
	assert.Equal(t, "pending", l.Items()[0].Status)
}

func TestPatch_IgnoredWhileNotReady(t *testing.T) {
	l := NewList(rowID)
	assert.False(t, l.Patch(1, func(r *row) {}))

	l.Fail("Failed to load data.")
	assert.False(t, l.Patch(1, func(r *row) {}))
}

func TestFail_SetsMessage(t *testing.T) {
	l := NewList(rowID)
	l.Fail("Please log in as admin.")
	assert.Equal(t, StatusFailed, l.Status())
	assert.Equal(t, "Please log in as admin.", l.ErrorMessage())
}
