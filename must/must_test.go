package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust2(t *testing.T) {
	tests := []struct {
		name    string
		f       func() (string, error)
		want    string
		wantErr string
	}{
		{
			name: "ok",
			f: func() (string, error) {
				return "value", nil
			},
			want: "value",
		},
		{
			name: "error",
			f: func() (string, error) {
				return "ignored", errors.New("oops")
			},
			wantErr: "oops",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.wantErr != "" {
				assert.PanicsWithError(t, tt.wantErr, func() {
					got = Must2(tt.f())
				})
			} else {
				got = Must2(tt.f())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
