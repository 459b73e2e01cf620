package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing command arguments")
	ErrNoCredentials  = errors.New("admin command requires a token or login and password")
)
