// Package custom_flags provides pflag.Value types that validate on Set.
package custom_flags

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/louiss0/projectinfo/custom_errors"
)

// UnionFlag only accepts one of a fixed set of values.
type UnionFlag interface {
	pflag.Value
	FlagName() string
	AllowedValues() []string
}

// PathFlag accepts any non blank path.
type PathFlag interface {
	pflag.Value
	FlagName() string
}

type unionFlag struct {
	value         string
	allowedValues []string
	flagName      string
}

// NewUnionFlag creates a UnionFlag. defaultValue may be empty; otherwise it must be allowed.
func NewUnionFlag(flagName string, allowedValues []string, defaultValue string) UnionFlag {
	if defaultValue != "" && !lo.Contains(allowedValues, defaultValue) {
		panic(fmt.Sprintf("default %q for the %s flag is not one of %v", defaultValue, flagName, allowedValues))
	}
	return &unionFlag{
		value:         defaultValue,
		allowedValues: allowedValues,
		flagName:      flagName,
	}
}

// String returns the current value, or the default when Set was never called.
func (u unionFlag) String() string {
	return u.value
}

// Set trims value and stores it when it is one of the allowed values.
// Anything else is rejected with custom_errors.ErrInvalidFlag.
func (u *unionFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if !lo.Contains(u.allowedValues, value) {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(u.flagName),
			fmt.Sprintf("must be one of %v", u.allowedValues),
		)
	}
	u.value = value
	return nil
}

// Type is the value type shown in help output.
func (u unionFlag) Type() string {
	return "string"
}

// FlagName returns the name the flag is registered under.
func (u unionFlag) FlagName() string {
	return u.flagName
}

// AllowedValues returns the values Set accepts, in the order they were given.
func (u unionFlag) AllowedValues() []string {
	return u.allowedValues
}

type pathFlag struct {
	value    string
	flagName string
}

// NewPathFlag creates a PathFlag.
func NewPathFlag(flagName string) PathFlag {
	return &pathFlag{flagName: flagName}
}

// String returns the path as given, or "" when the flag was not set.
func (p pathFlag) String() string {
	return p.value
}

// Set stores value unless it is blank or contains a NUL byte.
// The path is not checked for existence; the command reading it reports that.
func (p *pathFlag) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(p.flagName),
			"cannot be empty or contain only whitespace",
		)
	}
	if strings.ContainsRune(value, 0) {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(p.flagName),
			"cannot contain NUL bytes",
		)
	}
	p.value = value
	return nil
}

// Type is the value type shown in help output.
func (p pathFlag) Type() string {
	return "path"
}

// FlagName returns the name the flag is registered under.
func (p pathFlag) FlagName() string {
	return p.flagName
}
