// Package cli implements the upwatch command-line interface.
//
// The root command runs the monitor: it resolves configuration from the
// environment, fails fast with exit code 1 if the Pushover credentials are
// missing, then hands off to the monitor package until interrupted.
//
//	upwatch            - Watch the endpoint until Ctrl+C
//	upwatch doctor     - Check credentials and endpoint reachability
//	upwatch version    - Print build information
//
// Global flags: --no-color disables styling (also honored via NO_COLOR, and
// automatic when stdout is not a terminal).
package cli
