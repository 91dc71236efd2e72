package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credentials holds connection settings for an external database.
type Credentials struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// DataSource is an external database that queries read from.
type DataSource struct {
	ID          uuid.UUID
	Name        string
	Kind        DataSourceKind
	Credentials Credentials
	RemoteDBID  *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DatabaseID returns the remote database id once the data source has been
// materialized in the BI service.
func (d *DataSource) DatabaseID() (int, bool) {
	if d.RemoteDBID == nil {
		return 0, false
	}
	return *d.RemoteDBID, true
}
