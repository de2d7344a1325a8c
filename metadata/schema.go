// Package metadata implements the metadata codec (C8): decoding a
// binary or JSON metadata blob into the phonemeta package's
// RawClassifier, and a concurrent multi-provider loader that produces
// one.
package metadata

// Document is the wire schema both the binary and JSON codecs decode
// into before it is resolved into a phonemeta.RawClassifier. Field tags
// use the compact names the JSON form is specified with; the binary
// codec encodes the same logical fields without relying on these tags.
type Document struct {
	Version            wireVersion        `json:"ver"`
	Types              []int              `json:"typ"` // tokenIndex per type name
	SingleValuedMask   uint64             `json:"svm"`
	ClassifierOnlyMask uint64             `json:"com"`
	CallingCodes       []wireCallingCode  `json:"ccd"`
	Tokens             []string           `json:"tok"`
}

type wireVersion struct {
	Major         int    `json:"maj"`
	Minor         int    `json:"min"`
	SchemaURI     string `json:"uri"`
	SchemaVersion int    `json:"ver"`
}

type wireCallingCode struct {
	CallingCode          uint32                    `json:"c"`
	ValidityMatcherIndex []uint32                  `json:"v"`
	NationalNumberData   []wireTypeClassifier      `json:"n"`
	MatcherData          []wireMatcherData         `json:"m"`
	NationalPrefix       []int                     `json:"p"` // tokenIndex list
	Regions              []int                     `json:"r"` // tokenIndex list, main region first
	NationalPrefixOptional bool                    `json:"npo"`
	ExampleNumber        string                    `json:"ex"`
	FormatTemplate       int                       `json:"ft"` // tokenIndex, 0 = none
}

// wireTypeClassifier is one entry of a calling code's nationalNumberData,
// in the same order as Document.Types. Whether the type is single-valued
// or classifier-only is a property of the type itself, not the record:
// it comes from Document.SingleValuedMask / ClassifierOnlyMask, indexed
// by this entry's position.
type wireTypeClassifier struct {
	DefaultValue int                 `json:"d"`  // tokenIndex, used only when HasDefault is set
	HasDefault   bool                `json:"hd"`
	Functions    []wireValueFunction `json:"fn"`
}

type wireValueFunction struct {
	Value        int      `json:"val"` // tokenIndex
	MatcherIndex []uint32 `json:"mi"`  // indices into this record's matcher pool
}

// wireMatcherData is one entry of a calling code's matcher pool: either
// a DFA matcher (MatcherBytes set) or a regex matcher (Regex set).
type wireMatcherData struct {
	PossibleLengthsMask uint32       `json:"l"`
	MatcherBytes        matcherBytes `json:"b,omitempty"`
	Regex               string       `json:"f,omitempty"`
}
