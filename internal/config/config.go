// Package config resolves the run parameters for a single minigrep invocation.
package config

import "errors"

// IgnoreCaseEnvVar is the environment variable whose presence enables
// case-insensitive matching. Any value counts, including the empty string.
const IgnoreCaseEnvVar = "IGNORE_CASE"

// ErrInsufficientArguments is returned by Build when fewer than three
// positional arguments are supplied.
var ErrInsufficientArguments = errors.New("not enough arguments")

// SearchConfig holds the parameters of one search run. It is created once
// per invocation by Build and never mutated afterwards.
type SearchConfig struct {
	// Query is the literal text being searched for. May be empty, in which
	// case every line of the document matches.
	Query string

	// FilePath is the path of the file to search, captured verbatim from the
	// arguments. Existence is not checked here; the file read reports it.
	FilePath string

	// IgnoreCase selects case-insensitive matching. It reflects the presence
	// of the IGNORE_CASE environment variable at the time Build was called.
	IgnoreCase bool
}

// Build assembles a SearchConfig from a raw argument vector.
//
// argv follows the conventional layout: argv[0] is the program name, argv[1]
// the query and argv[2] the file path. Elements beyond argv[2] are ignored.
// Query and file path are captured verbatim, with no trimming and no path
// validation, so both may be empty strings.
//
// The environment signal is passed in as ignoreCase rather than read here,
// which keeps Build a pure function of its inputs. Callers derive the flag
// with IgnoreCaseFromEnv.
func Build(argv []string, ignoreCase bool) (*SearchConfig, error) {
	if len(argv) < 3 {
		return nil, ErrInsufficientArguments
	}

	return &SearchConfig{
		Query:      argv[1],
		FilePath:   argv[2],
		IgnoreCase: ignoreCase,
	}, nil
}

// IgnoreCaseFromEnv reports whether IGNORE_CASE is present in the environment
// described by lookup. Only presence matters: IGNORE_CASE="" and
// IGNORE_CASE=0 both enable the mode. Pass os.LookupEnv for the real process
// environment.
func IgnoreCaseFromEnv(lookup func(string) (string, bool)) bool {
	_, present := lookup(IgnoreCaseEnvVar)
	return present
}
