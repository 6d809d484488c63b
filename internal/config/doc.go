// Package config provides configuration management for sitetext.
//
// Configuration comes from three layers, lowest precedence first:
//  1. Compiled-in defaults (the Default* constants)
//  2. An optional YAML file (.sitetext in the current or home directory,
//     or an explicit path passed on the command line)
//  3. Command-line flags
//
// Design decision: We use a single flat Config struct populated once at
// startup and passed through the application via dependency injection
// rather than global state. The number of options is small enough that
// nested sub-structs would add complexity without benefit.
package config
