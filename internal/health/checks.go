package health

import (
	"context"
	"os"
)

// DataFileCheck verifies that the catalog data file exists and is a
// regular file. Used by the readiness probe so the server only reports
// ready when it can serve the data route.
type DataFileCheck struct {
	name string
	path func() string
}

// NewDataFileCheck creates a data file check. The path is resolved on
// every check so configuration reloads are picked up.
func NewDataFileCheck(name string, path func() string) *DataFileCheck {
	return &DataFileCheck{name: name, path: path}
}

// Name returns the name of the check.
func (c *DataFileCheck) Name() string {
	return c.name
}

// Check performs the check.
func (c *DataFileCheck) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.path())
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.ErrInvalid
	}
	return nil
}
