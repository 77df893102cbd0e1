// Object file framing: concrete readers for the nodes.dat/ways.dat/
// areas.dat layout owed by external collaborators, just enough to
// drive the offset-width planner and keyset builder end-to-end in
// isolation.
//
// Each file begins with a little-endian uint32 record count, followed by
// that many records placed back-to-back. A string field is a uint16
// length followed by that many UTF-8 bytes (length 0 means empty/absent).
package textindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// NodeRecord is one entry of nodes.dat.
type NodeRecord struct {
	Offset  uint64
	TypeID  uint16
	Name    string
	NameAlt string
}

// WayRecord is one entry of ways.dat. Ways additionally carry a reference
// number (route/road number) indexed alongside Name and NameAlt.
type WayRecord struct {
	Offset  uint64
	TypeID  uint16
	Name    string
	NameAlt string
	RefName string
}

// Ring is one ring of an area. Each ring carries its own type and names;
// the enclosing AreaRecord's Offset is what every ring's keys point at —
// the offset is always the area record's offset, not per-ring.
type Ring struct {
	TypeID  uint16
	Name    string
	NameAlt string
}

// AreaRecord is one entry of areas.dat: one area offset, one or more
// rings.
type AreaRecord struct {
	Offset uint64
	Rings  []Ring
}

// readString reads a uint16 length prefix followed by that many bytes.
func readString(r *bufio.Reader) (string, error) {
	var length uint16
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// writeString writes a uint16 length prefix followed by the string bytes.
// Used by test fixtures and by external importers producing conformant
// object files.
func writeString(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		return fmt.Errorf("textindex: string field too long (%d bytes)", len(s))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// readRecordCount reads the leading little-endian uint32 record count.
func readRecordCount(r *bufio.Reader) (uint32, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// openObjectFile opens path for sequential reading and reads its record
// count. A missing file is treated as a zero-record file, matching
// planWidth's treatment of an absent object file.
func openObjectFile(path string) (*os.File, *bufio.Reader, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, 0, nil
		}
		return nil, nil, 0, err
	}
	r := bufio.NewReader(f)
	count, err := readRecordCount(r)
	if err != nil {
		f.Close()
		return nil, nil, 0, err
	}
	return f, r, count, nil
}

// forEachNode streams nodes.dat, invoking fn with each record's captured
// offset filled in.
func forEachNode(path string, fn func(NodeRecord) error) error {
	f, r, count, err := openObjectFile(path)
	if err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	defer f.Close()

	offset := uint64(4) // past the record-count header
	for i := uint32(0); i < count; i++ {
		start := offset
		var rec NodeRecord
		var typeID uint16
		if err := binary.Read(r, binary.LittleEndian, &typeID); err != nil {
			return err
		}
		offset += 2
		name, err := readString(r)
		if err != nil {
			return err
		}
		offset += 2 + uint64(len(name))
		nameAlt, err := readString(r)
		if err != nil {
			return err
		}
		offset += 2 + uint64(len(nameAlt))

		rec.Offset = start
		rec.TypeID = typeID
		rec.Name = name
		rec.NameAlt = nameAlt

		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// forEachWay streams ways.dat the same way forEachNode streams nodes.dat,
// with the additional RefName field.
func forEachWay(path string, fn func(WayRecord) error) error {
	f, r, count, err := openObjectFile(path)
	if err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	defer f.Close()

	offset := uint64(4)
	for i := uint32(0); i < count; i++ {
		start := offset
		var rec WayRecord
		var typeID uint16
		if err := binary.Read(r, binary.LittleEndian, &typeID); err != nil {
			return err
		}
		offset += 2
		name, err := readString(r)
		if err != nil {
			return err
		}
		offset += 2 + uint64(len(name))
		nameAlt, err := readString(r)
		if err != nil {
			return err
		}
		offset += 2 + uint64(len(nameAlt))
		refName, err := readString(r)
		if err != nil {
			return err
		}
		offset += 2 + uint64(len(refName))

		rec.Offset = start
		rec.TypeID = typeID
		rec.Name = name
		rec.NameAlt = nameAlt
		rec.RefName = refName

		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// forEachArea streams areas.dat. Each area is a uint16 ring count followed
// by that many rings (TypeID, Name, NameAlt).
func forEachArea(path string, fn func(AreaRecord) error) error {
	f, r, count, err := openObjectFile(path)
	if err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	defer f.Close()

	offset := uint64(4)
	for i := uint32(0); i < count; i++ {
		start := offset
		var ringCount uint16
		if err := binary.Read(r, binary.LittleEndian, &ringCount); err != nil {
			return err
		}
		offset += 2

		rings := make([]Ring, 0, ringCount)
		for j := uint16(0); j < ringCount; j++ {
			var ring Ring
			var typeID uint16
			if err := binary.Read(r, binary.LittleEndian, &typeID); err != nil {
				return err
			}
			offset += 2
			name, err := readString(r)
			if err != nil {
				return err
			}
			offset += 2 + uint64(len(name))
			nameAlt, err := readString(r)
			if err != nil {
				return err
			}
			offset += 2 + uint64(len(nameAlt))

			ring.TypeID = typeID
			ring.Name = name
			ring.NameAlt = nameAlt
			rings = append(rings, ring)
		}

		if err := fn(AreaRecord{Offset: start, Rings: rings}); err != nil {
			return err
		}
	}
	return nil
}

// WriteNodeFile writes a conformant nodes.dat for the given records.
// Intended for test fixtures and for external importers producing object
// files this package can consume.
func WriteNodeFile(path string, records []NodeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := binary.Write(w, binary.LittleEndian, rec.TypeID); err != nil {
			return err
		}
		if err := writeString(w, rec.Name); err != nil {
			return err
		}
		if err := writeString(w, rec.NameAlt); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteWayFile writes a conformant ways.dat for the given records.
func WriteWayFile(path string, records []WayRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := binary.Write(w, binary.LittleEndian, rec.TypeID); err != nil {
			return err
		}
		if err := writeString(w, rec.Name); err != nil {
			return err
		}
		if err := writeString(w, rec.NameAlt); err != nil {
			return err
		}
		if err := writeString(w, rec.RefName); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteAreaFile writes a conformant areas.dat for the given records.
func WriteAreaFile(path string, records []AreaRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(rec.Rings))); err != nil {
			return err
		}
		for _, ring := range rec.Rings {
			if err := binary.Write(w, binary.LittleEndian, ring.TypeID); err != nil {
				return err
			}
			if err := writeString(w, ring.Name); err != nil {
				return err
			}
			if err := writeString(w, ring.NameAlt); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
