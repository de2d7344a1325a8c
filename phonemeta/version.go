// Package phonemeta holds the decoded, immutable metadata model: the
// per-calling-code records and type classifiers a loader (package
// metadata) produces, and the RawClassifier registry that serves
// queries against them. Nothing in this package mutates after
// construction; every exported type is safe to share by reference across
// goroutines without locking.
package phonemeta

import "strconv"

// VersionInfo identifies a metadata snapshot's schema and data revision.
type VersionInfo struct {
	SchemaURI        string
	SchemaVersion    int
	MajorDataVersion int
	MinorDataVersion int
}

// String renders v as "schemaURI@schemaVersion (data major.minor)".
func (v VersionInfo) String() string {
	return v.SchemaURI + "@" + strconv.Itoa(v.SchemaVersion) +
		" (data " + strconv.Itoa(v.MajorDataVersion) + "." + strconv.Itoa(v.MinorDataVersion) + ")"
}

// Satisfies reports whether v is compatible with a consumer's requested
// VersionInfo: the schema URIs match, v's schema is at least as new,
// v's major data version matches exactly (a major bump signals a
// breaking change in data semantics), and v's minor data version is at
// least as new.
func (v VersionInfo) Satisfies(requested VersionInfo) bool {
	return v.SchemaURI == requested.SchemaURI &&
		v.SchemaVersion >= requested.SchemaVersion &&
		v.MajorDataVersion == requested.MajorDataVersion &&
		v.MinorDataVersion >= requested.MinorDataVersion
}
