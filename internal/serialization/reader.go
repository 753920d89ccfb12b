package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Read decodes a checkpoint from r and verifies its checksum and layout.
func Read(r io.Reader) (map[string]float64, Header, error) {
	var header Header

	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, header, errors.Wrap(err, "failed to read fixed header")
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, header, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, header, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	if headerSize > MaxHeaderSize {
		return nil, header, ErrHeaderTooLarge
	}
	if dataSize > MaxParameterCount*ValueSize {
		return nil, header, ErrTooManyParameters
	}

	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, header, errors.Wrap(err, "failed to read header JSON")
	}
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, header, errors.Wrap(err, "failed to parse header JSON")
	}

	if _, err := io.CopyN(io.Discard, r, int64(paddingFor(int(headerSize)))); err != nil {
		return nil, header, errors.Wrap(err, "failed to skip padding")
	}

	data := make([]byte, dataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, header, errors.Wrap(err, "failed to read parameter data")
	}
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return nil, header, err
	}
	if err := ValidateHeader(&header, int64(dataSize)); err != nil {
		return nil, header, err
	}

	state := make(map[string]float64, len(header.Parameters))
	for _, p := range header.Parameters {
		state[p.Name] = math.Float64frombits(binary.LittleEndian.Uint64(data[p.Offset:]))
	}
	return state, header, nil
}

// ReadFile decodes the checkpoint stored at path.
func ReadFile(path string) (map[string]float64, Header, error) {
	//nolint:gosec // G304: checkpoint path comes from the user
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}
