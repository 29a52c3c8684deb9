package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "rigreport/internal/errors"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: 0,
		},
		{
			name: "not found",
			err:  apperrors.NewNotFoundError("report", "7"),
			want: 2,
		},
		{
			name: "database error",
			err:  apperrors.NewDatabaseError("insert", stderrors.New("locked")),
			want: 1,
		},
		{
			name: "plain error",
			err:  stderrors.New("flag parsing failed"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleError(tt.err))
		})
	}
}
