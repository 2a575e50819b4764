package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid formatted cpf",
			input: "529.982.247-25",
			want:  "52998224725",
		},
		{
			name:  "valid digits only",
			input: "52998224725",
			want:  "52998224725",
		},
		{
			name:    "wrong check digit",
			input:   "529.982.247-26",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "1234567890",
			wantErr: true,
		},
		{
			name:    "all digits equal",
			input:   "111.111.111-11",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "letters",
			input:   "abc.def.ghi-jk",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCPF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("529.982.247-25"))
	assert.False(t, IsValid("529.982.247-26"))
}
