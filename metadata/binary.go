package metadata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Binary wire format: a length-prefixed packed encoding of Document.
// Every variable-length field is preceded by a uint32 count or byte
// length in little-endian order; every fixed field is written in place.
// This mirrors the packed-table encoding package automaton uses for its
// DFA bytecode (see automaton/bytecode.go), applied here one level up
// at the document level.

const binaryMagic = uint32(0x4e504d31) // "NPM1"

func writeUint32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	buf.Write(tmp[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint32(buf, uint32(len(s)))
	buf.WriteString(s)
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	writeUint32(buf, uint32(len(b)))
	buf.Write(b)
}

func writeIntSlice(buf *bytes.Buffer, vs []int) {
	writeUint32(buf, uint32(len(vs)))
	for _, v := range vs {
		writeUint32(buf, uint32(v))
	}
}

func writeUint32Slice(buf *bytes.Buffer, vs []uint32) {
	writeUint32(buf, uint32(len(vs)))
	for _, v := range vs {
		writeUint32(buf, v)
	}
}

// EncodeBinary packs doc into the binary wire format.
func EncodeBinary(doc *Document) []byte {
	var buf bytes.Buffer
	writeUint32(&buf, binaryMagic)

	writeUint32(&buf, uint32(doc.Version.Major))
	writeUint32(&buf, uint32(doc.Version.Minor))
	writeString(&buf, doc.Version.SchemaURI)
	writeUint32(&buf, uint32(doc.Version.SchemaVersion))

	writeIntSlice(&buf, doc.Types)
	writeUint64(&buf, doc.SingleValuedMask)
	writeUint64(&buf, doc.ClassifierOnlyMask)

	writeUint32(&buf, uint32(len(doc.CallingCodes)))
	for _, cc := range doc.CallingCodes {
		writeUint32(&buf, cc.CallingCode)
		writeUint32Slice(&buf, cc.ValidityMatcherIndex)

		writeUint32(&buf, uint32(len(cc.NationalNumberData)))
		for _, tc := range cc.NationalNumberData {
			writeUint32(&buf, uint32(tc.DefaultValue))
			buf.WriteByte(boolByte(tc.HasDefault))
			writeUint32(&buf, uint32(len(tc.Functions)))
			for _, fn := range tc.Functions {
				writeUint32(&buf, uint32(fn.Value))
				writeUint32Slice(&buf, fn.MatcherIndex)
			}
		}

		writeUint32(&buf, uint32(len(cc.MatcherData)))
		for _, md := range cc.MatcherData {
			writeUint32(&buf, md.PossibleLengthsMask)
			writeBytes(&buf, md.MatcherBytes)
			writeString(&buf, md.Regex)
		}

		writeIntSlice(&buf, cc.NationalPrefix)
		writeIntSlice(&buf, cc.Regions)
		buf.WriteByte(boolByte(cc.NationalPrefixOptional))
		writeString(&buf, cc.ExampleNumber)
		writeUint32(&buf, uint32(cc.FormatTemplate))
	}

	writeUint32(&buf, uint32(len(doc.Tokens)))
	for _, tok := range doc.Tokens {
		writeString(&buf, tok)
	}

	return buf.Bytes()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// binaryReader is a small bounds-checked cursor over an encoded
// Document. Every read method reports *CorruptMetadataError on
// truncation instead of panicking, so a malformed blob never crashes
// the loader.
type binaryReader struct {
	data []byte
	pos  int
}

func (r *binaryReader) u32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *binaryReader) u64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *binaryReader) byte() (byte, error) {
	if r.pos+1 > len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binaryReader) bytes() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.data) {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

func (r *binaryReader) str() (string, error) {
	b, err := r.bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *binaryReader) intSlice() ([]int, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}

func (r *binaryReader) u32Slice() ([]uint32, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeBinary unpacks data into a Document, or reports
// *CorruptMetadataError for any truncation or malformed length prefix.
func DecodeBinary(data []byte) (*Document, error) {
	r := &binaryReader{data: data}
	doc, err := decodeBinary(r)
	if err != nil {
		return nil, &CorruptMetadataError{Reason: err.Error()}
	}
	return doc, nil
}

func decodeBinary(r *binaryReader) (*Document, error) {
	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != binaryMagic {
		return nil, fmt.Errorf("bad magic %#x", magic)
	}

	doc := &Document{}
	major, err := r.u32()
	if err != nil {
		return nil, err
	}
	minor, err := r.u32()
	if err != nil {
		return nil, err
	}
	uri, err := r.str()
	if err != nil {
		return nil, err
	}
	schemaVer, err := r.u32()
	if err != nil {
		return nil, err
	}
	doc.Version = wireVersion{Major: int(major), Minor: int(minor), SchemaURI: uri, SchemaVersion: int(schemaVer)}

	if doc.Types, err = r.intSlice(); err != nil {
		return nil, err
	}
	if doc.SingleValuedMask, err = r.u64(); err != nil {
		return nil, err
	}
	if doc.ClassifierOnlyMask, err = r.u64(); err != nil {
		return nil, err
	}

	ccCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	doc.CallingCodes = make([]wireCallingCode, ccCount)
	for i := range doc.CallingCodes {
		cc := &doc.CallingCodes[i]
		if cc.CallingCode, err = r.u32(); err != nil {
			return nil, err
		}
		if cc.ValidityMatcherIndex, err = r.u32Slice(); err != nil {
			return nil, err
		}

		tcCount, err := r.u32()
		if err != nil {
			return nil, err
		}
		cc.NationalNumberData = make([]wireTypeClassifier, tcCount)
		for j := range cc.NationalNumberData {
			tc := &cc.NationalNumberData[j]
			defVal, err := r.u32()
			if err != nil {
				return nil, err
			}
			tc.DefaultValue = int(defVal)
			if tc.HasDefault, err = readBool(r); err != nil {
				return nil, err
			}
			fnCount, err := r.u32()
			if err != nil {
				return nil, err
			}
			tc.Functions = make([]wireValueFunction, fnCount)
			for k := range tc.Functions {
				val, err := r.u32()
				if err != nil {
					return nil, err
				}
				tc.Functions[k].Value = int(val)
				if tc.Functions[k].MatcherIndex, err = r.u32Slice(); err != nil {
					return nil, err
				}
			}
		}

		mdCount, err := r.u32()
		if err != nil {
			return nil, err
		}
		cc.MatcherData = make([]wireMatcherData, mdCount)
		for j := range cc.MatcherData {
			md := &cc.MatcherData[j]
			if md.PossibleLengthsMask, err = r.u32(); err != nil {
				return nil, err
			}
			b, err := r.bytes()
			if err != nil {
				return nil, err
			}
			if len(b) > 0 {
				md.MatcherBytes = append([]byte(nil), b...)
			}
			if md.Regex, err = r.str(); err != nil {
				return nil, err
			}
		}

		if cc.NationalPrefix, err = r.intSlice(); err != nil {
			return nil, err
		}
		if cc.Regions, err = r.intSlice(); err != nil {
			return nil, err
		}
		if cc.NationalPrefixOptional, err = readBool(r); err != nil {
			return nil, err
		}
		if cc.ExampleNumber, err = r.str(); err != nil {
			return nil, err
		}
		ft, err := r.u32()
		if err != nil {
			return nil, err
		}
		cc.FormatTemplate = int(ft)
	}

	tokCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	doc.Tokens = make([]string, tokCount)
	for i := range doc.Tokens {
		if doc.Tokens[i], err = r.str(); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func readBool(r *binaryReader) (bool, error) {
	b, err := r.byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}
