// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadParams reads a challenge data file, a JSON object keyed by level number, and decodes the
// entry of level l into that level's parameter record. Extra fields are ignored; every missing
// required field is reported, wrapped in ErrMissingField.
func LoadParams(r io.Reader, l Level) (Params, error) {
	params, err := NewParams(l)
	if err != nil {
		return nil, err
	}
	var levels map[string]json.RawMessage
	if err = json.NewDecoder(r).Decode(&levels); err != nil {
		return nil, errors.Wrap(err, "decoding the challenge data")
	}
	raw, ok := levels[strconv.Itoa(int(l))]
	if !ok {
		return nil, errors.Wrapf(ErrLevelNotFound, "%s", l)
	}
	if err = json.Unmarshal(raw, params); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", l)
	}
	if err = params.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", l)
	}
	return params, nil
}

func LoadParamsFile(path string, l Level) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadParams(f, l)
}
