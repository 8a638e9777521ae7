package issuetype

import "errors"

var ErrNotFound = errors.New("issue type not found")

// IssueType is admin-managed reference data; complaints point at it by id.
type IssueType struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"size:128;not null;uniqueIndex:ux_issue_types_name" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (IssueType) TableName() string { return "issue_types" }
