package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// readDefinition parses a JSON resource definition from a file.
func readDefinition(filename string, obj interface{}) error {
	defBytes, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "error reading definition file %s", filename)
	}
	if err := json.Unmarshal(defBytes, obj); err != nil {
		return errors.Wrapf(err, "error parsing definition file %s", filename)
	}
	return nil
}
