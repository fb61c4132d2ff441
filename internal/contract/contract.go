// Package contract holds the validated runtime configuration and the
// shared helpers the commands and pipeline agree on.
package contract
