package meeting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapInsertError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   error
		mapped bool
	}{
		{name: "exclusion", err: &pq.Error{Code: "23P01"}, want: ErrSlotOccupied, mapped: true},
		{name: "wrapped exclusion", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"}), want: ErrSlotOccupied, mapped: true},
		{name: "unique", err: &pq.Error{Code: "23505"}, want: ErrDuplicateMeetingRequest, mapped: true},
		{name: "other pq", err: &pq.Error{Code: "42P01"}},
		{name: "plain", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapInsertError(tt.err)
			assert.Equal(t, tt.mapped, ok)
			if tt.mapped {
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
