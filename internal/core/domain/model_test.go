package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeFromScale(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		want  string
	}{
		{
			name:  "scale 0",
			scale: 0,
			want:  Size256,
		},
		{
			name:  "scale 1",
			scale: 1,
			want:  Size512,
		},
		{
			name:  "scale 2",
			scale: 2,
			want:  Size1024,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SizeFromScale(tc.scale))
		})
	}
}
