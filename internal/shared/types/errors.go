package types

import "errors"

var (
	ErrNoData                  = errors.New("no data to write")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
