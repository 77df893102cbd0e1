package textindex

// Kind identifies the geometric class of a map object. The numeric values
// are load-bearing: they are the literal kind-marker byte written into
// every trie key.
type Kind uint8

const (
	KindNode Kind = 1
	KindWay  Kind = 2
	KindArea Kind = 3
)

// String renders the kind for diagnostics; not used in any on-disk form.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case KindWay:
		return "Way"
	case KindArea:
		return "Area"
	default:
		return "Unknown"
	}
}

// Category is the disjoint bucket a named object is routed into at build
// time, based on its type's index hint. Precedence when a type carries
// more than one flag is POI > Location > Region > Other.
type Category uint8

const (
	CategoryPOI Category = iota
	CategoryLocation
	CategoryRegion
	CategoryOther
)

// categories lists the four categories in the fixed visiting order used by
// Open and Search: POI, Location, Region, Other.
var categories = [4]Category{CategoryPOI, CategoryLocation, CategoryRegion, CategoryOther}

// fileName returns the sibling filename this category is persisted under.
func (c Category) fileName() string {
	switch c {
	case CategoryPOI:
		return "textpoi.dat"
	case CategoryLocation:
		return "textloc.dat"
	case CategoryRegion:
		return "textregion.dat"
	case CategoryOther:
		return "textother.dat"
	default:
		return ""
	}
}

func (c Category) String() string {
	switch c {
	case CategoryPOI:
		return "POI"
	case CategoryLocation:
		return "Location"
	case CategoryRegion:
		return "Region"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ObjectRef is a typed reference to a map object: its kind and its byte
// offset within the corresponding object file. Offsets are unique within
// a kind but not across kinds.
type ObjectRef struct {
	Kind   Kind
	Offset uint64
}
