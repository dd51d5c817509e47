package fontfallback

import xfont "golang.org/x/image/font"

// styleToXFont maps the CSS font-style booleans ComputedStyle carries
// (italic, oblique) onto golang.org/x/image/font's Style enum, the
// vocabulary core/font/fontregistry's matching functions expect.
func styleToXFont(italic, oblique bool) xfont.Style {
	switch {
	case italic:
		return xfont.StyleItalic
	case oblique:
		return xfont.StyleOblique
	default:
		return xfont.StyleNormal
	}
}

// weightToXFont maps a numeric CSS font-weight (100-900) onto
// golang.org/x/image/font's Weight enum.
func weightToXFont(weight int) xfont.Weight {
	switch {
	case weight <= 100:
		return xfont.WeightThin
	case weight <= 200:
		return xfont.WeightExtraLight
	case weight <= 300:
		return xfont.WeightLight
	case weight <= 400:
		return xfont.WeightNormal
	case weight <= 500:
		return xfont.WeightMedium
	case weight <= 600:
		return xfont.WeightSemiBold
	case weight <= 700:
		return xfont.WeightBold
	case weight <= 800:
		return xfont.WeightExtraBold
	default:
		return xfont.WeightBlack
	}
}
