// Package commands provides the command-line interface for the wolfclu tool.
//
// It implements commands for:
//   - encryption and decryption
//   - hashing
//   - benchmarking
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
