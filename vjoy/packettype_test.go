package vjoy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketTypeRoundTrip(t *testing.T) {
	// Every member of the closed set decodes and re-encodes to itself.
	for pt, name := range packetTypeNames {
		got, err := PacketTypeFromCode(pt.Code())
		require.NoError(t, err, name)
		assert.Equal(t, pt, got, name)
		assert.Equal(t, pt.Code(), got.Code(), name)
	}
}

func TestPacketTypeFromCode(t *testing.T) {
	tests := []struct {
		name    string
		code    uint32
		want    PacketType
		wantErr bool
	}{
		{name: "set effect", code: 0x01, want: PTEffRep},
		{name: "set custom force", code: 0x0E, want: PTSetCRep},
		{name: "block free", code: 0x0B, want: PTBlkFrRep},
		{name: "pool report", code: 0x13, want: PTPoolRep},
		{name: "create new effect", code: 0x11, want: PTNewEfRep},
		{name: "zero", code: 0x00, wantErr: true},
		{name: "hole in write range", code: 0x09, wantErr: true},
		{name: "past write range", code: 0x0F, wantErr: true},
		{name: "below feature range", code: 0x10, wantErr: true},
		{name: "past feature range", code: 0x14, wantErr: true},
		{name: "way out", code: 0xFF, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PacketTypeFromCode(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				var pte *PacketTypeError
				require.True(t, errors.As(err, &pte))
				assert.Equal(t, tt.code, pte.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPacketTypeErrorNamesOffendingValue(t *testing.T) {
	_, err := PacketTypeFromCode(0x09)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9")
}

func TestPacketTypeString(t *testing.T) {
	assert.Equal(t, "PT_BLKFRREP", PTBlkFrRep.String())
	assert.Equal(t, "PT_POOLREP", PTPoolRep.String())
	assert.Equal(t, "PT_INVALID(0x09)", PacketType(0x09).String())
}

func TestPacketTypeRanges(t *testing.T) {
	assert.True(t, PTEffRep.IsWrite())
	assert.True(t, PTSetCRep.IsWrite())
	assert.False(t, PTNewEfRep.IsWrite())
	assert.True(t, PTPoolRep.IsFeature())
	assert.False(t, PTGainRep.IsFeature())
}
