package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// Version is the mynet version recorded in written headers.
const Version = "0.1.0"

// Write encodes state into w.
//
// FormatVersion, Version, Parameters and a zero CreatedAt in header are filled
// in by Write; ModelType, Metadata and CheckpointMeta are written as given.
func Write(w io.Writer, state map[string]float64, header Header) error {
	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	slices.Sort(names)

	header.FormatVersion = FormatVersion
	header.Version = Version
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	header.Parameters = make([]ParamMeta, len(names))
	data := make([]byte, len(names)*ValueSize)
	for i, name := range names {
		if err := ValidateParameterName(name); err != nil {
			return err
		}
		offset := i * ValueSize
		header.Parameters[i] = ParamMeta{Name: name, Offset: int64(offset)}
		binary.LittleEndian.PutUint64(data[offset:], math.Float64bits(state[name]))
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)

	var flags uint32
	if header.CheckpointMeta != nil {
		flags |= FlagHasCheckpoint
	}
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))

	checksum := ComputeChecksum(data)
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	padding := paddingFor(len(headerJSON))
	for _, chunk := range [][]byte{fixed, headerJSON, make([]byte, padding), data} {
		if _, err := w.Write(chunk); err != nil {
			return errors.Wrap(err, "failed to write checkpoint")
		}
	}
	return nil
}

// WriteFile encodes state into the file at path, replacing it if it exists.
func WriteFile(path string, state map[string]float64, header Header) error {
	//nolint:gosec // G304: checkpoint path comes from the user
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}

	if err := Write(file, state, header); err != nil {
		_ = file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "failed to close file")
}

// paddingFor returns the zero bytes needed after a JSON header of n bytes.
func paddingFor(n int) int {
	pos := FixedHeaderSize + n
	return (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment
}
