package lax

// Mode is the configuration bitmask for a single parse pass. Bits
// combine freely, with one exception: the two Prefer* bits are
// mutually exclusive and setting both makes ParseMode return an
// ErrorTypeInvalidMode error.
type Mode uint8

const (
	// PreferFlagForUnregOption classifies an unregistered option name
	// followed by a non-option token as a flag; the following token is
	// left alone and re-evaluated on its own. This is the default.
	PreferFlagForUnregOption Mode = 1 << iota

	// PreferParamForUnregOption classifies an unregistered option name
	// followed by a non-option token as a parameter, consuming the
	// following token as its value.
	PreferParamForUnregOption

	// NoSplitOnEqualSign disables name=value splitting, so a token like
	// --name=value is handled as one ordinary option name.
	NoSplitOnEqualSign

	// SingleDashIsMultiflag expands an unregistered single-dash token
	// into one flag per character, tar style (-xvf).
	SingleDashIsMultiflag
)

// DefaultMode is the mode used by Parser.Parse.
const DefaultMode = PreferFlagForUnregOption

// conflicting reports whether both Prefer* bits are set.
func (m Mode) conflicting() bool {
	return m&PreferFlagForUnregOption != 0 && m&PreferParamForUnregOption != 0
}
