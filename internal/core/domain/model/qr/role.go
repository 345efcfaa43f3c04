package qr

import (
	"fmt"

	"medcourier/internal/pkg/errs"
)

// Role identifies who performed a scan.
type Role int

const (
	// UnknownRole represents an invalid actor role.
	UnknownRole Role = iota

	// RiderRole is a courier carrying samples.
	RiderRole

	// CenterStaffRole is personnel at a collection center.
	CenterStaffRole

	// HospitalStaffRole is personnel at a receiving hospital.
	HospitalStaffRole
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:       "unknown",
		RiderRole:         "rider",
		CenterStaffRole:   "center_staff",
		HospitalStaffRole: "hospital_staff",
	}
}

// Validate checks if the role is one of the known actor roles.
func (r Role) Validate() error {
	switch r {
	case RiderRole, CenterStaffRole, HospitalStaffRole:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a role from its wire name.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "rider":
		return RiderRole, nil
	case "center_staff":
		return CenterStaffRole, nil
	case "hospital_staff":
		return HospitalStaffRole, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%q is not a valid role", s))
	}
}
