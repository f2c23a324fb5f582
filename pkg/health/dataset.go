package health

import (
	"context"
	"fmt"
	"time"
)

// SnapshotInfo is the read-only view of the active dataset a checker needs.
type SnapshotInfo interface {
	FundCount() int
	NavSchemeCount() int
	LoadedAt() time.Time
}

// DatasetChecker verifies the in-memory dataset snapshot is populated.
type DatasetChecker struct {
	name     string
	snapshot func() SnapshotInfo
	maxAge   time.Duration
}

// NewDatasetChecker creates a checker over the active snapshot. maxAge of 0
// disables staleness reporting (reload may be disabled entirely).
func NewDatasetChecker(name string, snapshot func() SnapshotInfo, maxAge time.Duration) *DatasetChecker {
	return &DatasetChecker{
		name:     name,
		snapshot: snapshot,
		maxAge:   maxAge,
	}
}

// Name returns the checker name
func (d *DatasetChecker) Name() string {
	return d.name
}

// Check verifies the snapshot holds data and is not stale
func (d *DatasetChecker) Check(ctx context.Context) CheckResult {
	snap := d.snapshot()
	if snap == nil {
		return NewCheckResult(d.name, StatusUnhealthy, "", fmt.Errorf("no dataset snapshot loaded"))
	}

	funds := snap.FundCount()
	schemes := snap.NavSchemeCount()
	age := time.Since(snap.LoadedAt())

	result := NewCheckResult(d.name, StatusHealthy, "dataset snapshot loaded", nil).
		WithMetadata("funds", funds).
		WithMetadata("nav_schemes", schemes).
		WithMetadata("loaded_at", snap.LoadedAt())

	if funds == 0 && schemes == 0 {
		return NewCheckResult(d.name, StatusUnhealthy, "", fmt.Errorf("dataset snapshot is empty"))
	}
	if funds == 0 || schemes == 0 {
		result.Status = StatusDegraded
		result.Message = "one dataset is empty"
	}
	if d.maxAge > 0 && age > d.maxAge {
		result.Status = StatusDegraded
		result.Message = fmt.Sprintf("snapshot is %s old", age.Round(time.Second))
	}

	return result
}
