package workflow

import (
	"context"
	"errors"
	"fmt"

	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/history"
	"complaintflow-backend/internal/domain/issuetype"
	"complaintflow-backend/internal/domain/uow"
	"complaintflow-backend/internal/domain/user"
	"complaintflow-backend/pkg/code"

	"gorm.io/gorm"
)

// Usecase is the workflow engine: it owns complaint creation, the role- and
// state-gated status transitions, and the reads over complaints + history.
// Every mutation goes through the UnitOfWork so the status write and its
// history append commit together.
type Usecase struct {
	complaints complaint.Repository
	entries    history.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(complaints complaint.Repository, entries history.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{complaints: complaints, entries: entries, uow: tx}
}

const genesisRemarks = "Complaint created."

// ErrInvalidInput marks a create request rejected before any store access.
// Handlers map it to 400; everything else from Create is a store failure.
var ErrInvalidInput = errors.New("invalid input")

// Create inserts a new complaint at Pending Validation together with its
// genesis history entry. The sequential complaint code is allocated inside
// the same transaction under a locking read, so concurrent creates cannot
// collide.
func (u *Usecase) Create(ctx context.Context, actor Actor, in CreateInput) (*complaint.Complaint, error) {
	if in.OutletName == "" || in.SKU == "" {
		return nil, fmt.Errorf("%w: outlet_name and sku are required", ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidInput)
	}

	var c *complaint.Complaint
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// FK invariant: the referenced issue type must exist.
		if _, err := r.IssueTypes.GetByID(ctx, in.IssueTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return issuetype.ErrNotFound
			}
			return err
		}

		n, err := r.Complaints.CountForUpdate(ctx)
		if err != nil {
			return err
		}

		c = &complaint.Complaint{
			ComplaintCode:  code.Format(n + 1),
			OutletName:     in.OutletName,
			OutletPhone:    in.OutletPhone,
			OutletEmail:    in.OutletEmail,
			SalesRepID:     actor.ID,
			SKU:            in.SKU,
			BatchNumber:    in.BatchNumber,
			Quantity:       in.Quantity,
			ProductionDate: in.ProductionDate,
			ExpiryDate:     in.ExpiryDate,
			IssueTypeID:    in.IssueTypeID,
			Description:    in.Description,
			Photos:         in.Photos,
			Status:         complaint.StatusPendingValidation,
		}
		if err := r.Complaints.Create(ctx, c); err != nil {
			return err
		}

		return r.History.Append(ctx, &history.Entry{
			ComplaintID: c.ID,
			ChangedByID: actor.ID,
			StatusFrom:  nil,
			StatusTo:    complaint.StatusPendingValidation,
			Remarks:     genesisRemarks,
		})
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Transition moves a complaint to targetStatus on behalf of the actor.
// The role gate runs before any store access; the lifecycle edge check runs
// against the row-locked current status inside the transaction.
func (u *Usecase) Transition(ctx context.Context, actor Actor, complaintID uint64, in TransitionInput) (*complaint.Complaint, error) {
	if in.Status == "" || !RoleMaySet(actor.Role, in.Status) {
		return nil, fmt.Errorf("%w: role %q cannot set status %q",
			complaint.ErrForbidden, actor.Role, in.Status)
	}

	var out *complaint.Complaint
	err := u.uow.WithinComplaintTx(ctx, complaintID, func(r uow.Repos, c *complaint.Complaint) error {
		if !EdgeAllowed(c.Status, in.Status) {
			return fmt.Errorf("%w: %q -> %q", complaint.ErrInvalidTransition, c.Status, in.Status)
		}

		prev := c.Status
		applyPatch(c, in)
		c.Status = in.Status
		if err := r.Complaints.Save(ctx, c); err != nil {
			return err
		}

		remarks := in.Remarks
		if remarks == "" {
			remarks = "Status updated to " + string(in.Status)
		}
		from := prev
		if err := r.History.Append(ctx, &history.Entry{
			ComplaintID: c.ID,
			ChangedByID: actor.ID,
			StatusFrom:  &from,
			StatusTo:    in.Status,
			Remarks:     remarks,
		}); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, complaint.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// applyPatch copies the one attachment field the target status allows.
// Anything else the caller supplied never reaches the store.
func applyPatch(c *complaint.Complaint, in TransitionInput) {
	switch in.Status {
	case complaint.StatusQCReportUploaded:
		if in.QCReportURL != "" {
			c.QCReportURL = in.QCReportURL
		}
	case complaint.StatusReplacementApproved:
		if in.ReplacementNotes != "" {
			c.ReplacementNotes = in.ReplacementNotes
		}
	case complaint.StatusERPUpdated:
		if in.ERPReference != "" {
			c.ERPReference = in.ERPReference
		}
	}
}

// Get returns the complaint view plus its full history, oldest first.
func (u *Usecase) Get(ctx context.Context, complaintID uint64) (*complaint.View, []history.Entry, error) {
	v, err := u.complaints.GetViewByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, complaint.ErrNotFound
		}
		return nil, nil, err
	}
	entries, err := u.entries.ListByComplaintID(ctx, complaintID)
	if err != nil {
		return nil, nil, err
	}
	return v, entries, nil
}

// List applies the visibility rule: reviewer roles see everything, filer
// roles see only complaints they filed themselves.
func (u *Usecase) List(ctx context.Context, actor Actor) ([]complaint.View, error) {
	switch actor.Role {
	case user.RoleSalesRep, user.RoleOutlet:
		return u.complaints.ListBySalesRepID(ctx, actor.ID)
	default:
		return u.complaints.ListAll(ctx)
	}
}
