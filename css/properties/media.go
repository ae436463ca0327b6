package properties

import (
	"fmt"
	"strings"
)

// Medium is the target medium of a conversion.
type Medium uint8

const (
	Screen Medium = iota
	Print
)

func (m Medium) String() string {
	switch m {
	case Screen:
		return "screen"
	case Print:
		return "print"
	default:
		return fmt.Sprintf("<invalid medium %d>", m)
	}
}

// ParseMedium accepts "screen", "print" and "all",
// which is the same as "screen".
func ParseMedium(s string) (Medium, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "screen", "all":
		return Screen, nil
	case "print":
		return Print, nil
	default:
		return 0, fmt.Errorf("unsupported medium %q", s)
	}
}

// NotPrintMedia are the properties which do not apply
// to the print medium.
var NotPrintMedia = NewPropSet(
	// Aural media
	PAzimuth,
	PCueAfter,
	PCueBefore,
	PElevation,
	PPauseAfter,
	PPauseBefore,
	PPitchRange,
	PPitch,
	PPlayDuring,
	PRichness,
	PSpeakHeader,
	PSpeakNumeral,
	PSpeakPunctuation,
	PSpeak,
	PSpeechRate,
	PStress,
	PVoiceFamily,
	PVolume,
	// Interactive
	PCursor,
	// Outlines only apply to interactive media
	POutlineColor,
	POutlineStyle,
	POutlineWidth,
)

// mediaExclusions lists, for each medium, the
// properties which do not apply to it.
var mediaExclusions = map[Medium]PropSet{
	Print: NotPrintMedia,
}

// Applies returns false if [p] is not relevant for the medium [m].
func Applies(p KnownProp, m Medium) bool {
	return !mediaExclusions[m].Has(p)
}

// ApplicableProps returns the properties relevant for the medium [m],
// in enum order.
func ApplicableProps(m Medium) []KnownProp {
	out := make([]KnownProp, 0, NbProps)
	for p := KnownProp(1); p < NbProps; p++ {
		if Applies(p, m) {
			out = append(out, p)
		}
	}
	return out
}
