package mysql

import (
	"context"
	"testing"
	"time"

	complaintDomain "complaintflow-backend/internal/domain/complaint"
	historyDomain "complaintflow-backend/internal/domain/history"
	issuetypeDomain "complaintflow-backend/internal/domain/issuetype"
	userDomain "complaintflow-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with all four tables. The domain
// models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&issuetypeDomain.IssueType{},
		&complaintDomain.Complaint{},
		&historyDomain.Entry{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

// seedRefs inserts the user and issue type the complaint views join against.
func seedRefs(t *testing.T, db *gorm.DB) (repID uint64, issueID uint64) {
	t.Helper()
	rep := &userDomain.User{Name: "Budi", Email: "budi@example.com", PasswordHash: "x", Role: userDomain.RoleSalesRep}
	if err := db.Create(rep).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	issue := &issuetypeDomain.IssueType{Name: "Carbonation", Description: "flat product"}
	if err := db.Create(issue).Error; err != nil {
		t.Fatalf("seed issue type: %v", err)
	}
	return rep.ID, issue.ID
}

func makeComplaint(code string, repID, issueID uint64) *complaintDomain.Complaint {
	return &complaintDomain.Complaint{
		ComplaintCode:  code,
		OutletName:     "Toko Jaya",
		SalesRepID:     repID,
		SKU:            "BEV-COLA-330",
		BatchNumber:    "B-2026-07",
		Quantity:       24,
		ProductionDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:     time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC),
		IssueTypeID:    issueID,
		Description:    "flat carbonation",
		Photos:         []string{"photos/a.jpg", "photos/b.jpg"},
		Status:         complaintDomain.StatusPendingValidation,
	}
}

func TestComplaintCreateAndReadBack(t *testing.T) {
	db := openTestDB(t)
	repID, issueID := seedRefs(t, db)
	repo := NewComplaintRepository(db)
	ctx := context.Background()

	c := makeComplaint("CMP-000001", repID, issueID)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByIDForUpdate(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if got.ComplaintCode != "CMP-000001" || got.Status != complaintDomain.StatusPendingValidation {
		t.Errorf("unexpected complaint: %+v", got)
	}
	if len(got.Photos) != 2 || got.Photos[0] != "photos/a.jpg" {
		t.Errorf("photos did not round-trip through the JSON serializer: %v", got.Photos)
	}
}

func TestComplaintGetViewByID_JoinsNames(t *testing.T) {
	db := openTestDB(t)
	repID, issueID := seedRefs(t, db)
	repo := NewComplaintRepository(db)
	ctx := context.Background()

	c := makeComplaint("CMP-000001", repID, issueID)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	v, err := repo.GetViewByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetViewByID: %v", err)
	}
	if v.SalesRepName != "Budi" || v.IssueTypeName != "Carbonation" {
		t.Errorf("joined names missing: %+v", v)
	}
}

func TestComplaintGetViewByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	seedRefs(t, db)
	repo := NewComplaintRepository(db)

	_, err := repo.GetViewByID(context.Background(), 999)
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestComplaintListBySalesRepID_Filters(t *testing.T) {
	db := openTestDB(t)
	repID, issueID := seedRefs(t, db)
	other := &userDomain.User{Name: "Sari", Email: "sari@example.com", PasswordHash: "x", Role: userDomain.RoleSalesRep}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed other user: %v", err)
	}
	repo := NewComplaintRepository(db)
	ctx := context.Background()

	for i, rep := range []uint64{repID, repID, other.ID} {
		c := makeComplaint(codeFor(i), rep, issueID)
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListAll: %d rows, err=%v", len(all), err)
	}
	mine, err := repo.ListBySalesRepID(ctx, repID)
	if err != nil || len(mine) != 2 {
		t.Fatalf("ListBySalesRepID: %d rows, err=%v", len(mine), err)
	}
	for _, v := range mine {
		if v.SalesRepID != repID {
			t.Errorf("row for wrong rep: %+v", v)
		}
	}
}

func codeFor(i int) string {
	return "CMP-00000" + string(rune('1'+i))
}

func TestComplaintCountForUpdate(t *testing.T) {
	db := openTestDB(t)
	repID, issueID := seedRefs(t, db)
	repo := NewComplaintRepository(db)
	ctx := context.Background()

	n, err := repo.CountForUpdate(ctx)
	if err != nil || n != 0 {
		t.Fatalf("empty count = %d, err=%v", n, err)
	}
	if err := repo.Create(ctx, makeComplaint("CMP-000001", repID, issueID)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	n, err = repo.CountForUpdate(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count after insert = %d, err=%v", n, err)
	}
}

func TestComplaintSave_PersistsStatusChange(t *testing.T) {
	db := openTestDB(t)
	repID, issueID := seedRefs(t, db)
	repo := NewComplaintRepository(db)
	ctx := context.Background()

	c := makeComplaint("CMP-000001", repID, issueID)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.Status = complaintDomain.StatusValidated
	c.QCReportURL = "https://reports/1.pdf"
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByIDForUpdate(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if got.Status != complaintDomain.StatusValidated || got.QCReportURL != "https://reports/1.pdf" {
		t.Errorf("save did not persist: %+v", got)
	}
}
