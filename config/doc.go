// Package config loads the scaffold settings shared by the command
// line tools: log level, input and output data paths, and the log
// directory.
package config
