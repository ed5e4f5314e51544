package cli

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// IFD0 tags read by ExtractJPEGMetadata.
const (
	tagMake        = 0x010F
	tagModel       = 0x0110
	tagOrientation = 0x0112
	tagSoftware    = 0x0131
	tagDateTime    = 0x0132
)

// Metadata is the subset of EXIF IFD0 that pixelforge reports.
type Metadata struct {
	Make        string
	Model       string
	Software    string
	DateTime    string
	Orientation int
}

// tiffStartFromJPEG scans JPEG segments for an APP1 Exif block and returns the
// offset where its TIFF header begins.
func tiffStartFromJPEG(data []byte) (int, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return -1, fmt.Errorf("not a jpeg")
	}
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA || marker == 0xD9 { // start of scan / end of image
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if marker == 0xE1 && segLen >= 8 && i+10 <= len(data) && string(data[i+4:i+10]) == "Exif\x00\x00" {
			return i + 10, nil
		}
		if segLen < 2 {
			i += 2
		} else {
			i += 2 + segLen
		}
	}
	return -1, fmt.Errorf("no exif segment")
}

// readIFD0 decodes the ASCII and SHORT entries of the first IFD.
func readIFD0(data []byte, tiffStart int) (Metadata, error) {
	var m Metadata
	if tiffStart+8 > len(data) {
		return m, fmt.Errorf("tiff header truncated")
	}
	var order binary.ByteOrder
	switch string(data[tiffStart : tiffStart+2]) {
	case "MM":
		order = binary.BigEndian
	case "II":
		order = binary.LittleEndian
	default:
		return m, fmt.Errorf("unknown tiff byte order")
	}
	if order.Uint16(data[tiffStart+2:tiffStart+4]) != 0x002A {
		return m, fmt.Errorf("invalid tiff magic")
	}
	ifd := tiffStart + int(order.Uint32(data[tiffStart+4:tiffStart+8]))
	if ifd+2 > len(data) {
		return m, fmt.Errorf("ifd truncated")
	}
	n := int(order.Uint16(data[ifd : ifd+2]))
	for e := 0; e < n; e++ {
		ent := ifd + 2 + e*12
		if ent+12 > len(data) {
			break
		}
		tag := order.Uint16(data[ent : ent+2])
		typ := order.Uint16(data[ent+2 : ent+4])
		count := int(order.Uint32(data[ent+4 : ent+8]))
		val := data[ent+8 : ent+12]

		switch typ {
		case 3: // SHORT
			if tag == tagOrientation && count >= 1 {
				m.Orientation = int(order.Uint16(val[:2]))
			}
		case 2: // ASCII
			var raw []byte
			if count > 4 {
				off := tiffStart + int(order.Uint32(val))
				if off < 0 || off+count > len(data) {
					continue
				}
				raw = data[off : off+count]
			} else {
				raw = val[:count]
			}
			if idx := bytes.IndexByte(raw, 0); idx >= 0 {
				raw = raw[:idx]
			}
			s := string(bytes.TrimSpace(raw))
			switch tag {
			case tagMake:
				m.Make = s
			case tagModel:
				m.Model = s
			case tagSoftware:
				m.Software = s
			case tagDateTime:
				m.DateTime = s
			}
		}
	}
	return m, nil
}

// ExtractJPEGMetadata returns the IFD0 metadata embedded in JPEG bytes.
func ExtractJPEGMetadata(data []byte) (Metadata, error) {
	start, err := tiffStartFromJPEG(data)
	if err != nil {
		return Metadata{}, err
	}
	return readIFD0(data, start)
}

// ExtractJPEGOrientation returns the EXIF orientation (1..8) from JPEG bytes.
func ExtractJPEGOrientation(data []byte) (int, error) {
	m, err := ExtractJPEGMetadata(data)
	if err != nil {
		return 0, err
	}
	if m.Orientation == 0 {
		return 0, fmt.Errorf("orientation tag not found")
	}
	return m.Orientation, nil
}
