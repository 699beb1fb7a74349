package sigs

import "github.com/kittyverse/weft/errors"

var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
