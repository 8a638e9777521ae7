package workflow

import (
	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/user"
)

// roleTargets is the fixed table of statuses each role may set. Roles missing
// from the map (Outlet, EXCO) can set nothing.
var roleTargets = map[user.Role][]complaint.Status{
	user.RoleSalesRep:     {complaint.StatusValidated, complaint.StatusForwardedToFGS},
	user.RoleFGSWarehouse: {complaint.StatusForwardedToQC, complaint.StatusReplacementApproved},
	user.RoleQCLab:        {complaint.StatusQCReportUploaded},
	user.RoleFinance:      {complaint.StatusERPUpdated},
	user.RoleAdmin:        {complaint.StatusClosed},
}

// edges defines the legal next statuses from each lifecycle stage, so a role
// cannot jump a complaint ahead of (or behind) its place in the flow.
// Closed is terminal.
var edges = map[complaint.Status][]complaint.Status{
	complaint.StatusPendingValidation:   {complaint.StatusValidated},
	complaint.StatusValidated:           {complaint.StatusForwardedToFGS},
	complaint.StatusForwardedToFGS:      {complaint.StatusForwardedToQC, complaint.StatusReplacementApproved},
	complaint.StatusForwardedToQC:       {complaint.StatusQCReportUploaded},
	complaint.StatusQCReportUploaded:    {complaint.StatusERPUpdated},
	complaint.StatusReplacementApproved: {complaint.StatusERPUpdated},
	complaint.StatusERPUpdated:          {complaint.StatusClosed},
}

// AllowedTargets returns the statuses the role may set. The returned slice is
// a copy; callers can mutate it freely.
func AllowedTargets(r user.Role) []complaint.Status {
	ts, ok := roleTargets[r]
	if !ok {
		return nil
	}
	out := make([]complaint.Status, len(ts))
	copy(out, ts)
	return out
}

// RoleMaySet reports whether the role is entitled to set the target status.
func RoleMaySet(r user.Role, s complaint.Status) bool {
	for _, t := range roleTargets[r] {
		if t == s {
			return true
		}
	}
	return false
}

// EdgeAllowed reports whether the lifecycle permits moving from → to.
func EdgeAllowed(from, to complaint.Status) bool {
	for _, next := range edges[from] {
		if next == to {
			return true
		}
	}
	return false
}
