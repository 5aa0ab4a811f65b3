package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vasp-registry/models"
	"vasp-registry/testutil"
)

func newHubbardRegistry(t *testing.T) *HubbardRegistry {
	t.Helper()
	db := testutil.NewDB(t)
	return NewHubbardRegistry(db, NewElementDirectory(db, zap.NewNop()), zap.NewNop())
}

func TestHubbardRegistry_GetDefaults(t *testing.T) {
	reg := newHubbardRegistry(t)

	h, err := reg.Get(context.Background(), "Cu")
	require.NoError(t, err)
	require.Equal(t, -1, h.L)
	require.Equal(t, 0.0, h.U)
	require.Nil(t, h.LigandSymbol)
	require.Nil(t, h.OxidationState)
	require.False(t, models.IsActive(h))
	require.Equal(t, "Cu (U=0.00, L=-1)", h.String())
}

func TestHubbardRegistry_GetIsIdempotent(t *testing.T) {
	reg := newHubbardRegistry(t)
	ctx := context.Background()
	opts := []HubbardOption{WithLigand("O"), WithConvention("wang"), WithOxidationState(3), WithU(5.3), WithL(2)}

	first, err := reg.Get(ctx, "Fe", opts...)
	require.NoError(t, err)
	second, err := reg.Get(ctx, "Fe", opts...)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.True(t, models.Equals(first, second))
	require.True(t, models.IsActive(second))
	require.Equal(t, "Fe3+-O (U=5.30, L=2)", second.String())

	all, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestHubbardRegistry_DistinctTuples(t *testing.T) {
	reg := newHubbardRegistry(t)
	ctx := context.Background()

	a, err := reg.Get(ctx, "Fe", WithU(5.3), WithL(2), WithConvention("wang"))
	require.NoError(t, err)
	b, err := reg.Get(ctx, "Fe", WithU(5.3), WithL(2), WithConvention("aykol"))
	require.NoError(t, err)

	// verschiedene Datensätze, aber gleich im Sinne von Equals
	require.NotEqual(t, a.ID, b.ID)
	require.True(t, models.Equals(a, b))

	// L = 0 ist ein gültiger Wert und darf nicht durch den Standard ersetzt werden
	s, err := reg.Get(ctx, "Fe", WithU(5.3), WithL(0))
	require.NoError(t, err)
	require.Equal(t, 0, s.L)

	all, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestHubbardRegistry_NegativeZeroMatchesZero(t *testing.T) {
	reg := newHubbardRegistry(t)
	ctx := context.Background()

	a, err := reg.Get(ctx, "Fe", WithU(0))
	require.NoError(t, err)
	b, err := reg.Get(ctx, "Fe", WithU(math.Copysign(0, -1)))
	require.NoError(t, err)
	require.Equal(t, a.ID, b.ID)

	c, err := reg.Get(ctx, "Ni", WithU(math.Copysign(0, -1)))
	require.NoError(t, err)
	require.Equal(t, "Ni_0.00", c.Key())
}

func TestHubbardRegistry_UnknownSymbols(t *testing.T) {
	reg := newHubbardRegistry(t)
	ctx := context.Background()

	_, err := reg.Get(ctx, "Xx", WithU(1), WithL(2))
	var herr *HubbardError
	require.True(t, errors.As(err, &herr))
	require.Equal(t, "element", herr.Role)
	require.ErrorIs(t, err, ErrUnknownElement)

	_, err = reg.Get(ctx, "Fe", WithLigand("Qq"))
	require.True(t, errors.As(err, &herr))
	require.Equal(t, "ligand", herr.Role)
	require.Equal(t, "Qq", herr.Symbol)

	all, err := reg.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestHubbardRegistry_Table(t *testing.T) {
	reg := newHubbardRegistry(t)
	ctx := context.Background()

	_, err := reg.Get(ctx, "Fe", WithU(5.3), WithL(2), WithConvention("wang"))
	require.NoError(t, err)
	_, err = reg.Get(ctx, "Fe", WithU(5.3), WithL(2), WithConvention("aykol"))
	require.NoError(t, err)
	_, err = reg.Get(ctx, "Ni", WithU(6.2), WithL(2))
	require.NoError(t, err)

	table, err := reg.Table(ctx)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, "wang", table["Fe_5.30"].Convention)
	require.Equal(t, "Ni", table["Ni_6.20"].ElementSymbol)
}
