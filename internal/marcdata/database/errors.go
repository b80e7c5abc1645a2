package database

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
)
