// Package custom_errors provides the sentinel errors returned by projectinfo.
// Callers match them with errors.Is; messages carry the detail.
package custom_errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidFlag represents an error indicating an invalid flag.
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrInvalidArgument represents an error indicating an invalid argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownKey is returned when a metadata key does not exist.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnknownFormat is returned when no renderer exists for a format.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrVersionMismatch is returned when a version source disagrees with the record.
	ErrVersionMismatch = errors.New("version mismatch")
	// ErrNameMismatch is returned when a manifest names a different package.
	ErrNameMismatch = errors.New("name mismatch")
)

var flagNameRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FlagName is the kebab-case name of a CLI flag.
type FlagName string

// Error returns nil when the name is lowercase kebab-case.
func (self FlagName) Error() error {
	if !flagNameRe.MatchString(string(self)) {
		return fmt.Errorf("%w: %s must be lowercase kebab-case", ErrInvalidFlag, string(self))
	}
	return nil
}

// CreateInvalidFlagErrorWithMessage creates an error with a custom message for an invalid flag.
// It first validates the flag name and returns the validation error if present.
var CreateInvalidFlagErrorWithMessage = func(flagName FlagName, message string) error {
	if err := flagName.Error(); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s %s", ErrInvalidFlag, flagName, message)
}

// CreateInvalidArgumentErrorWithMessage creates an error with a custom message for an invalid argument.
var CreateInvalidArgumentErrorWithMessage = func(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, message)
}

// UnknownKey builds an ErrUnknownKey that lists the keys that do exist.
func UnknownKey(key string, known []string) error {
	return fmt.Errorf("%w: %q, expected one of: %s", ErrUnknownKey, key, strings.Join(known, ", "))
}

// UnknownFormat builds an ErrUnknownFormat that lists the supported formats.
func UnknownFormat(format string, supported []string) error {
	return fmt.Errorf("%w: %q, expected one of: %s", ErrUnknownFormat, format, strings.Join(supported, ", "))
}

// VersionMismatch reports that source holds got while the record holds want.
func VersionMismatch(source, got, want string) error {
	return fmt.Errorf("%w: %s has %s but projectVersion is %s", ErrVersionMismatch, source, got, want)
}

// NameMismatch reports that source names got while the record names want.
func NameMismatch(source, got, want string) error {
	return fmt.Errorf("%w: %s is %q but projectName is %q", ErrNameMismatch, source, got, want)
}
