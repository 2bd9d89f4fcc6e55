package models

import "time"

// Iceberg represents a row in the icebergs table. Each iceberg belongs to
// exactly one user; modified is maintained by the store.
type Iceberg struct {
	ID       int       `json:"id" db:"id"`
	UserID   int       `json:"userid" db:"userid"`
	Modified time.Time `json:"modified" db:"modified"`
}

// NewIceberg carries the fields set when creating an iceberg.
type NewIceberg struct {
	UserID int
}

// IcebergUpdate carries the updatable iceberg fields; nil means "leave unchanged".
type IcebergUpdate struct {
	UserID *int
}
