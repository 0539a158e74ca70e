// SPDX-License-Identifier: MIT

package adjust_test

import (
	"testing"

	"github.com/katalvlaran/lvdiff/adjust"
	"github.com/katalvlaran/lvdiff/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMismatch_Identical checks identical profiles score zero.
func TestMismatch_Identical(t *testing.T) {
	p := linearProfile(t, 100, 50)
	d, err := adjust.Mismatch(p, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestMismatch_OrdersByWidth checks a wider simulation scores worse.
func TestMismatch_OrdersByWidth(t *testing.T) {
	ref := linearProfile(t, 100, 50)
	near := linearProfile(t, 110, 50)
	far := linearProfile(t, 200, 50)

	dNear, err := adjust.Mismatch(ref, near, nil)
	require.NoError(t, err)
	dFar, err := adjust.Mismatch(ref, far, &adjust.MismatchOptions{Window: 10})
	require.NoError(t, err)
	assert.Greater(t, dNear, 0.0)
	assert.Greater(t, dFar, dNear)
}

// TestMismatch_Errors covers nil input and a negative band.
func TestMismatch_Errors(t *testing.T) {
	p := linearProfile(t, 100, 5)
	_, err := adjust.Mismatch(nil, p, nil)
	assert.ErrorIs(t, err, adjust.ErrNilInput)

	_, err = adjust.Mismatch(p, p, &adjust.MismatchOptions{Window: -1})
	assert.ErrorIs(t, err, adjust.ErrBadWindow)

	var empty profile.Profile
	_, err = adjust.Mismatch(&empty, p, nil)
	assert.ErrorIs(t, err, adjust.ErrEmptySequence)
}
