// Package version reports the build version of a binary.
package version
