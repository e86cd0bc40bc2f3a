package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todatamining/strata/market"
	"github.com/todatamining/strata/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func fixtureCurves() []*market.Curve {
	return []*market.Curve{market.EurDiscountCurve(), market.EurForward3MCurve()}
}

func TestStore_SaveAndGetCurveSet(t *testing.T) {
	// GIVEN: The EUR fixture curves
	ctx := context.Background()
	store := newTestStore(t)
	valuation := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	// WHEN: Saving and reloading
	id, err := store.SaveCurveSet(ctx, "eur-fixture", valuation, fixtureCurves())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	set, err := store.GetCurveSet(ctx, "eur-fixture")
	require.NoError(t, err)

	// THEN: The set round-trips with exact node values
	assert.Equal(t, id, set.ID)
	assert.Equal(t, valuation, set.ValuationDate)
	require.Len(t, set.Curves, 2)

	dsc := set.Curves[0]
	assert.Equal(t, market.EurDiscountCurveName, dsc.Name())
	assert.Equal(t, market.ValueZeroRate, dsc.Metadata().YValueType)
	assert.Equal(t, 6, dsc.ParameterCount())
	assert.Equal(t, "0.0125", dsc.YValue(0.5).String())

	fwd := set.Curves[1]
	assert.Equal(t, market.EurForward3MName, fwd.Name())
	assert.Equal(t, 8, fwd.ParameterCount())
	assert.Equal(t, "0.021", fwd.YValue(10.0).String())
}

func TestStore_DuplicateNameRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	valuation := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	_, err := store.SaveCurveSet(ctx, "eur-fixture", valuation, fixtureCurves())
	require.NoError(t, err)

	_, err = store.SaveCurveSet(ctx, "eur-fixture", valuation, fixtureCurves())
	assert.ErrorIs(t, err, sqlite.ErrDuplicateSet)
}

func TestStore_GetMissingSet(t *testing.T) {
	_, err := newTestStore(t).GetCurveSet(context.Background(), "nope")
	assert.ErrorIs(t, err, sqlite.ErrSetNotFound)
}

func TestStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	valuation := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	_, err := store.SaveCurveSet(ctx, "set-a", valuation, fixtureCurves())
	require.NoError(t, err)
	_, err = store.SaveCurveSet(ctx, "set-b", valuation, fixtureCurves()[:1])
	require.NoError(t, err)

	infos, err := store.ListCurveSets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	counts := map[string]int{}
	for _, info := range infos {
		counts[info.Name] = info.CurveCount
	}
	assert.Equal(t, 2, counts["set-a"])
	assert.Equal(t, 1, counts["set-b"])

	require.NoError(t, store.DeleteCurveSet(ctx, "set-a"))
	_, err = store.GetCurveSet(ctx, "set-a")
	assert.ErrorIs(t, err, sqlite.ErrSetNotFound)

	err = store.DeleteCurveSet(ctx, "set-a")
	assert.ErrorIs(t, err, sqlite.ErrSetNotFound)
}
