package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeviceID(t *testing.T) {
	got, err := NewDeviceID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "dev_"))
	assert.Len(t, got, len("dev_")+DefaultLength)
	assert.NoError(t, ValidatePrefix(got, PrefixDevice))
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "dev_abc", wantErr: false},
		{in: "usr_abc", wantErr: true},
		{in: "dev_", wantErr: true},
		{in: "devabc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidatePrefix(tt.in, PrefixDevice)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
