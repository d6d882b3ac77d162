package segmentation

import "github.com/ironsheep/pedmap-tools/internal/imaging"

// NamedRange is one of the fixed colour ranges the filters threshold on.
type NamedRange struct {
	Name     string
	Contains func(imaging.RGBColor) bool
}

// Ranges lists every colour range in the order the pipeline applies them.
var Ranges = []NamedRange{
	{"public_route", PublicRouteColor.Contains},
	{"public_fill", func(c imaging.RGBColor) bool { return PublicFillHSV.Contains(imaging.ToHSV(c)) }},
	{"structure", func(c imaging.RGBColor) bool { return StructureHSV.Contains(imaging.ToHSV(c)) }},
	{"path", PathColor.Contains},
	{"green_area", GreenAreaColor.Contains},
	{"water", WaterColor.Contains},
	{"vegetation", func(c imaging.RGBColor) bool { return VegetationHSV.Contains(imaging.ToHSV(c)) }},
}

// MatchingRanges returns the names of the ranges c falls into. It is used
// to tune thresholds against a sampled map pixel.
func MatchingRanges(c imaging.RGBColor) []string {
	var out []string
	for _, r := range Ranges {
		if r.Contains(c) {
			out = append(out, r.Name)
		}
	}
	return out
}
