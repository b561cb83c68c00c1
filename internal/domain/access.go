package domain

// Staff club staff members. Staff may book special reservations and
// manage occupancies created by other members.
type Staff map[int64]struct{}

// NewStaff builds the staff set from configured user ids
func NewStaff(ids ...int64) Staff {
	s := make(Staff, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether the user is a staff member. A nil set has no staff.
func (s Staff) Contains(userID int64) bool {
	_, ok := s[userID]
	return ok
}

// CanManage reports whether the user may edit or cancel the reservation
func (s Staff) CanManage(r *Reservation, userID int64) bool {
	return r.CreatedBy == userID || s.Contains(userID)
}
