package upgrade

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Planning errors. Callers match them with errors.Is.
var (
	ErrUnsupportedTarget  = errors.New("unsupported target version")
	ErrUnsupportedCurrent = errors.New("unsupported current version")
	ErrDowngradeRejected  = errors.New("downgrade not supported")
	ErrAlreadyUpToDate    = errors.New("project already up to date")
)

// PlanError describes why no upgrade path exists between two versions.
type PlanError struct {
	Err       error
	Current   string
	Requested string
	Supported []string
}

func (e *PlanError) Error() string {
	supported := strings.Join(e.Supported, ", ")
	switch {
	case errors.Is(e.Err, ErrUnsupportedTarget):
		return fmt.Sprintf("upgrading to version %s is not supported. Supported versions are %s", e.Requested, supported)
	case errors.Is(e.Err, ErrUnsupportedCurrent):
		return fmt.Sprintf("upgrading projects built using version %s is not supported. Supported versions are %s", e.Current, supported)
	case errors.Is(e.Err, ErrDowngradeRejected):
		return fmt.Sprintf("you cannot downgrade a project from %s to %s", e.Current, e.Requested)
	case errors.Is(e.Err, ErrAlreadyUpToDate):
		return fmt.Sprintf("project doesn't need to be upgraded, it is already at version %s", e.Current)
	default:
		return e.Err.Error()
	}
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// Plan returns the versions to apply when upgrading from current to
// requested: the catalog entries after current up to and including
// requested, newest first. Order is list position in catalog.
func Plan(catalog []string, current, requested string) ([]string, error) {
	planErr := func(err error) error {
		return &PlanError{
			Err:       err,
			Current:   current,
			Requested: requested,
			Supported: append([]string(nil), catalog...),
		}
	}

	to := slices.Index(catalog, requested)
	if to < 0 {
		return nil, planErr(ErrUnsupportedTarget)
	}
	from := slices.Index(catalog, current)
	if from < 0 {
		return nil, planErr(ErrUnsupportedCurrent)
	}
	if from > to {
		return nil, planErr(ErrDowngradeRejected)
	}
	if from == to {
		return nil, planErr(ErrAlreadyUpToDate)
	}

	steps := slices.Clone(catalog[from+1 : to+1])
	slices.Reverse(steps)
	return steps, nil
}
