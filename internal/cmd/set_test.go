package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjoyd/vjoyd/vjoy"
)

func TestSetBuildPosition(t *testing.T) {
	c := Set{
		Device: 3,
		Axis:   map[string]int32{"x": 0x4000, "rz": 0x8000, "sl1": 0x1},
		Button: map[uint8]bool{1: true, 33: true},
		ContPov: map[uint8]uint32{
			1: 9000,
			4: 27000,
		},
	}

	pos, err := c.buildPosition()
	require.NoError(t, err)

	assert.Equal(t, uint8(3), pos.Device)
	assert.Equal(t, int32(0x4000), pos.AxisX)
	assert.Equal(t, int32(0x8000), pos.AxisZRot)
	assert.Equal(t, int32(0x1), pos.Dial)
	// Unset axes stay at zero rather than inheriting anything.
	assert.Zero(t, pos.AxisY)

	assert.Equal(t, uint32(1), pos.Buttons)
	assert.Equal(t, uint32(1), pos.ButtonsEx1)

	assert.Equal(t, uint32(9000), pos.Hats)
	assert.Equal(t, uint32(27000), pos.HatsEx3)
	// Hats not named in the flags rest at neutral, not north.
	assert.Equal(t, vjoy.HatNeutral, pos.HatsEx1)
	assert.Equal(t, vjoy.HatNeutral, pos.HatsEx2)
}

func TestSetBuildPositionDiscreteHatsPackNibbles(t *testing.T) {
	c := Set{
		Device:  1,
		DiscPov: map[uint8]int32{1: 0, 3: 2, 4: -1},
	}

	pos, err := c.buildPosition()
	require.NoError(t, err)

	// Four nibbles in the first word, 0xF neutral: hat1=N, hat2 untouched,
	// hat3=S, hat4 explicitly neutral.
	assert.Equal(t, uint32(0xFFFFF2F0), pos.Hats)
	assert.Equal(t, vjoy.HatNeutral, pos.HatsEx1)
}

func TestSetBuildPositionRejectsBadInput(t *testing.T) {
	for name, c := range map[string]Set{
		"mixed hat forms": {
			DiscPov: map[uint8]int32{1: 0},
			ContPov: map[uint8]uint32{2: 100},
		},
		"unknown axis":        {Axis: map[string]int32{"throttle": 1}},
		"pov pseudo axis":     {Axis: map[string]int32{"pov": 1}},
		"cont hat index high": {ContPov: map[uint8]uint32{5: 0}},
		"disc hat index high": {DiscPov: map[uint8]int32{5: 0}},
		"disc direction high": {DiscPov: map[uint8]int32{1: 4}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := c.buildPosition()
			assert.Error(t, err)
		})
	}
}
