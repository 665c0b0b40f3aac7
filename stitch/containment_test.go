package stitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamfix/stitch"
)

func TestEdgeInWire(t *testing.T) {
	tf := newTwoFace(t)

	assert.True(t, stitch.EdgeInWire(tf.K, tf.R1a, tf.W1))
	assert.True(t, stitch.EdgeInWire(tf.K, tf.R1b, tf.W1))
	assert.False(t, stitch.EdgeInWire(tf.K, tf.R2, tf.W1))
	// Orientation does not matter: F2's outer uses S1 reversed.
	assert.True(t, stitch.EdgeInWire(tf.K, tf.S1, tf.F2.Outer()))
	assert.True(t, stitch.EdgeInWire(tf.K, tf.S1.Reverse(), tf.F1.Outer()))
	assert.False(t, stitch.EdgeInWire(tf.K, nil, tf.W1))
	assert.False(t, stitch.EdgeInWire(tf.K, tf.R1a, nil))
}

func TestWireInFace(t *testing.T) {
	tf := newTwoFace(t)

	// Built from F1's own boundary edges.
	assert.True(t, stitch.WireInFace(tf.K, tf.W1, tf.F1))
	assert.True(t, stitch.WireInFace(tf.K, tf.W2, tf.F2))
	assert.True(t, stitch.WireInFace(tf.K, tf.F1.Outer(), tf.F1))
	// Rims of the other side are not on the boundary.
	assert.False(t, stitch.WireInFace(tf.K, tf.W1, tf.F2))
	assert.False(t, stitch.WireInFace(tf.K, tf.W2, tf.F1))
}

func TestWireInFace_PartialOverlap(t *testing.T) {
	tf := newTwoFace(t)
	// S1 is on both faces, R1a only on F1.
	w, err := tf.K.AddWire("mixed", tf.S1, tf.R1a)
	require.NoError(t, err)

	assert.True(t, stitch.WireInFace(tf.K, w, tf.F1))
	assert.False(t, stitch.WireInFace(tf.K, w, tf.F2))
}
