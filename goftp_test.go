package ftpkit

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapStatusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
		{
			name: "550 maps to not exist",
			err:  fmt.Errorf("550 /pub/nope: No such file or directory"),
			want: ErrNotExist,
		},
		{
			name: "530 maps to permission",
			err:  fmt.Errorf("530 Login incorrect"),
			want: ErrPermission,
		},
		{
			name: "other codes pass through",
			err:  fmt.Errorf("426 Connection closed; transfer aborted"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStatusError(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("mapStatusError(nil) = %v", got)
				}
				return
			}
			if tt.want == nil {
				if got != tt.err {
					t.Errorf("unrecognized error should pass through unchanged, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("mapStatusError(%v) = %v, want wrapped %v", tt.err, got, tt.want)
			}
		})
	}
}
