package vjoy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceStateFromCode(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want DeviceState
	}{
		{name: "owned", code: 0, want: StateOwned},
		{name: "free", code: 1, want: StateFree},
		{name: "bust", code: 2, want: StateBust},
		{name: "missing", code: 3, want: StateMissing},
		{name: "negative", code: -1, want: StateUnknown},
		{name: "just past known", code: 4, want: StateUnknown},
		{name: "large", code: 99, want: StateUnknown},
		{name: "very large", code: 1000, want: StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeviceStateFromCode(tt.code))
		})
	}
}

func TestDeviceStateString(t *testing.T) {
	assert.Equal(t, "owned", StateOwned.String())
	assert.Equal(t, "bust", StateBust.String())
	assert.Equal(t, "unknown", DeviceStateFromCode(42).String())
}
