package main

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/metricsimple/metricsimple/sdk/meta"
)

// presentAPIError rewrites a server-side validation failure into per-field
// lines, the way the workbench surfaces them next to its inputs. Anything
// other than a bad request with field-level detail passes through untouched.
func presentAPIError(err error) error {
	badRequest, ok := err.(*meta.ErrBadRequest)
	if !ok {
		return err
	}
	fieldErrs := badRequest.FieldErrors()
	if len(fieldErrs) == 0 {
		return err
	}
	paths := make([]string, 0, len(fieldErrs))
	for path := range fieldErrs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	msg := badRequest.Reason
	if msg == "" {
		msg = "the submitted definition is invalid"
	}
	for _, path := range paths {
		msg = fmt.Sprintf("%s\n  %s: %s", msg, path, fieldErrs[path])
	}
	return errors.New(msg)
}
