package config

import "errors"

// CaseInsensitiveEnv switches searches to case-insensitive matching when set
// to any value, including the empty string.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var ErrNotEnoughArgs = errors.New("not enough arguments")

// ArgumentError reports a command line that cannot be turned into a Config.
type ArgumentError struct {
	Got  int
	Want int
	Err  error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }

func (e *ArgumentError) Unwrap() error { return e.Err }

// Config is the input of a single search. It is built once and never
// modified afterwards.
type Config struct {
	Query         string
	Path          string
	CaseSensitive bool
}

// New builds a Config from the full process argument list, where args[0] is
// the program name, args[1] the query and args[2] the file path. Extra
// arguments are ignored. lookupEnv is consulted exactly once.
func New(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	if len(args) < 3 {
		return Config{}, &ArgumentError{Got: len(args), Want: 3, Err: ErrNotEnoughArgs}
	}
	_, insensitive := lookupEnv(CaseInsensitiveEnv)
	return Config{
		Query:         args[1],
		Path:          args[2],
		CaseSensitive: !insensitive,
	}, nil
}

// IgnoringCase returns a copy of c that matches case-insensitively.
func (c Config) IgnoringCase() Config {
	c.CaseSensitive = false
	return c
}
