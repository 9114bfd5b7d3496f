// Package testutil provides utilities for testing hooks components.
//
// Key components:
//   - TestEnvironment: isolates XDG directories and HOOKS_* variables so
//     configuration and log files never touch the developer's home
//   - WriteConfig: writes a TOML config file into the isolated config home
package testutil
