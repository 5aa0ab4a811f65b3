package models

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPotentialString(t *testing.T) {
	tests := []struct {
		name string
		p    Potential
		want string
	}{
		{"paw gw with release", Potential{Name: "Li_sv", PAW: true, XC: XCPBE, GW: true, Release: "r5_4_0"}, "Li_sv PAW PBE GW r5_4_0"},
		{"unknown release", Potential{Name: "Li_sv", PAW: true, XC: XCPBE, Release: UnknownRelease}, "Li_sv PAW PBE"},
		{"paw wins over us", Potential{Name: "Fe", PAW: true, US: true, XC: XCLDA, Release: UnknownRelease}, "Fe PAW LDA"},
		{"ultrasoft", Potential{Name: "Cu", US: true, XC: XCGGA, Release: UnknownRelease}, "Cu US GGA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestPotentialIdentityKey_IgnoresPotcarText(t *testing.T) {
	a := &Potential{ElementSymbol: "Li", Name: "Li_sv", XC: XCPBE, PAW: true, Enmax: 499, Enmin: 374.2, Date: "23Jan2001", Release: UnknownRelease}
	b := *a
	b.Potcar = "raw text"
	require.Equal(t, a.IdentityKey(), b.IdentityKey())

	b.Enmax = 500
	require.NotEqual(t, a.IdentityKey(), b.IdentityKey())
}

func TestPotentialError(t *testing.T) {
	err := fmt.Errorf("block 2: %w", &PotentialError{Symbol: "Xx"})

	var perr *PotentialError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "Xx", perr.Symbol)
	require.Contains(t, err.Error(), "unknown element in potential: Xx")
}

func TestPotentialIdentityKey_NegativeZero(t *testing.T) {
	a := &Potential{ElementSymbol: "Li", Name: "Li_sv", Enmin: 0}
	b := &Potential{ElementSymbol: "Li", Name: "Li_sv", Enmin: math.Copysign(0, -1)}
	require.Equal(t, a.IdentityKey(), b.IdentityKey())
}
