package parser

import (
	"github.com/coregx/numplan/digitseq"
)

// GetRegions returns cc's region list, main region first, or
// phonemeta.ErrUnknownCallingCode if cc is unsupported.
func (p *PhoneNumberParser) GetRegions(cc digitseq.Sequence) ([]string, error) {
	data, err := p.raw.GetParserData(cc)
	if err != nil {
		return nil, err
	}
	return data.Regions, nil
}

// GetCallingCode returns the calling code mapped to region, or
// ErrUnknownRegion if region isn't indexed (including the "001" world
// pseudo-region, which maps to more than one calling code and so is
// never resolvable by this lookup).
func (p *PhoneNumberParser) GetCallingCode(region string) (digitseq.Sequence, error) {
	cc, ok := p.regionToCC[region]
	if !ok {
		return digitseq.Empty, ErrUnknownRegion
	}
	return cc, nil
}

// GetExampleNumber returns cc's example national number, and false if
// cc is unsupported or declares none.
func (p *PhoneNumberParser) GetExampleNumber(cc digitseq.Sequence) (digitseq.Sequence, bool) {
	data, err := p.raw.GetParserData(cc)
	if err != nil || !data.HasExampleNumber {
		return digitseq.Empty, false
	}
	return data.ExampleNumber, true
}

// GetExampleNumberForRegion returns the example number for region's
// calling code, and false if region or its example number is unknown.
func (p *PhoneNumberParser) GetExampleNumberForRegion(region string) (digitseq.Sequence, bool) {
	cc, err := p.GetCallingCode(region)
	if err != nil {
		return digitseq.Empty, false
	}
	return p.GetExampleNumber(cc)
}
