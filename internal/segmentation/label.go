package segmentation

// Label is the outcome of classifying one traced region.
type Label int

const (
	Unclassified Label = iota
	Public
	Private
	Road
	Vegetation
)

func (l Label) String() string {
	switch l {
	case Public:
		return "public"
	case Private:
		return "private"
	case Road:
		return "road"
	case Vegetation:
		return "vegetation"
	default:
		return "unclassified"
	}
}

// ClassifyParcel decides whether a cadastral parcel is public: any marked
// route pixel inside it is enough.
func ClassifyParcel(routePixels int) Label {
	if routePixels > 0 {
		return Public
	}
	return Private
}

// ClassifyBlock decides what a block traced from the base map is. The route
// check wins over the vegetation check; both comparisons are strict.
func ClassifyBlock(routeFraction, vegetationFraction float64, p Params) Label {
	if routeFraction > p.RouteFraction {
		return Road
	}
	if vegetationFraction > p.VegetationFraction {
		return Vegetation
	}
	return Unclassified
}
