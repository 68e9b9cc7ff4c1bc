package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNotLoggedIn     = errors.New("not logged in, run `lexsight login` first")
)
