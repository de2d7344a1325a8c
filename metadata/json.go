package metadata

import (
	"encoding/base64"
	"encoding/json"
)

// matcherBytes is wireMatcherData.MatcherBytes's wire type. encoding/json's
// default []byte handling emits base64.StdEncoding ('+'/'/'), but the
// schema's JSON wire form specifies base64url so the same text can sit
// unescaped in a URL or filename; matcherBytes overrides marshaling to
// match.
type matcherBytes []byte

func (m matcherBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.URLEncoding.EncodeToString(m))
}

func (m *matcherBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*m = nil
		return nil
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*m = b
	return nil
}

// EncodeJSON marshals doc into the JSON wire form, using the compact
// field names the schema specifies.
func EncodeJSON(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

// DecodeJSON unmarshals data into a Document, reporting
// *CorruptMetadataError on any malformed JSON.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptMetadataError{Reason: err.Error()}
	}
	return &doc, nil
}
