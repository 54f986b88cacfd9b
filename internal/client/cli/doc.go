// Package cli is the interactive terminal front-end.
//
// The App wires together the session store, the screen navigator, the REST
// client and the domain services, then runs a read-eval-print loop (see
// Root). Each command belongs to a screen; before running, the command
// navigates there and the navigator's guards decide whether the user is
// admitted. Interactive input goes through test seams (getSimpleText,
// getPassword) so command handlers can be driven from tests.
package cli
