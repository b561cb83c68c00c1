package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaff_CanManage(t *testing.T) {
	staff := NewStaff(1, 2)
	res := &Reservation{ID: 10, CreatedBy: 7}

	tests := []struct {
		name   string
		staff  Staff
		userID int64
		want   bool
	}{
		{"owner", staff, 7, true},
		{"staff member", staff, 2, true},
		{"other member", staff, 8, false},
		{"owner without staff", nil, 7, true},
		{"nobody is staff in nil set", nil, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.staff.CanManage(res, tt.userID))
		})
	}
}
