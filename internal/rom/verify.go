package rom

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// MalformedInputError reports an input image that does not match the
// expected original structure. It is never retryable and the run aborts
// before producing any output.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

// Region of a known ROM dump.
type Region string

const (
	RegionNA      Region = "NA"
	RegionJP      Region = "JP"
	RegionUnknown Region = "unknown"
)

// Info describes the identified input image.
type Info struct {
	Headered bool
	MD5      string
	Known    bool
	Desc     string
	Region   Region
}

type dbEntry struct {
	desc   string
	region Region
}

// knownROMs maps MD5 hashes of unheadered dumps to their description.
// The hash only drives region and description reporting; validation
// itself is structural so that repaired or trimmed dumps still process.
var knownROMs = map[string]dbEntry{
	"eb0789088fc70be42b2f994c1b66be21": {desc: "Neutopia (U)", region: RegionNA},
	"08ae173878d8a3783fa35e80c99a5dc4": {desc: "Neutopia (J)", region: RegionJP},
}

// Verify checks the structural shape of an input dump and returns the
// identification info together with the unheadered image buffer.
// A dump of any other size fails with MalformedInputError.
func Verify(data []byte) (Info, []byte, error) {
	var headered bool
	switch len(data) {
	case Size:
	case Size + HeaderSize:
		headered = true
		data = data[HeaderSize:]
	default:
		return Info{}, nil, &MalformedInputError{
			Reason: fmt.Sprintf("size %d matches neither the raw (%d) nor the headered (%d) dump",
				len(data), Size, Size+HeaderSize),
		}
	}

	sum := md5.Sum(data)
	hash := hex.EncodeToString(sum[:])

	info := Info{
		Headered: headered,
		MD5:      hash,
		Desc:     "Unrecognized ROM",
		Region:   RegionUnknown,
	}
	if entry, ok := knownROMs[hash]; ok {
		info.Known = true
		info.Desc = entry.desc
		info.Region = entry.region
	}
	return info, data, nil
}
