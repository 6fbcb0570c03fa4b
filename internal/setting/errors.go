package setting

import "errors"

var ErrEmptyInput = errors.New("no settings provided")
