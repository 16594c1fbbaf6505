package rewrite

import (
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

// MarkerName is the attribute path the tool owns, both as invocation
// argument carrier and as per-node exclusion marker.
const MarkerName = "pubsweep"

// excludeArg is the only argument the exclusion marker accepts.
const excludeArg = "exclude"

// recursiveArg switches nested module handling on.
const recursiveArg = "recursive"

// ParseMode interprets the invocation argument: empty means shallow,
// "recursive" descends into inline modules, anything else is an error.
func ParseMode(arg string, sp source.Span) (bool, *Error) {
	switch arg {
	case "":
		return false, nil
	case recursiveArg:
		return true, nil
	default:
		return false, errAt(diag.RewriteInvalidModeArg, sp,
			"invalid argument to `"+MarkerName+"` attribute: `"+arg+"`")
	}
}
