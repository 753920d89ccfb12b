package serialization

import "time"

// Format constants.
const (
	MagicBytes      = "MYNT"
	FormatVersion   = 1
	HeaderAlignment = 64   // Data section starts on a 64-byte boundary
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
	ValueSize       = 8    // Bytes per stored parameter (float64)
)

// Flags for the .mynet format.
const (
	FlagHasCheckpoint uint32 = 1 << 0 // bit 0: training state included
	FlagHasMetadata   uint32 = 1 << 1 // bit 1: custom metadata included
)

// Header represents the JSON header in a .mynet file.
type Header struct {
	FormatVersion  int               `json:"format_version"`       // Version of the .mynet format
	Version        string            `json:"version"`              // Version of mynet that created this file
	ModelType      string            `json:"model_type"`           // Type of model (e.g., "MLP")
	CreatedAt      time.Time         `json:"created_at"`           // When the file was created
	Parameters     []ParamMeta       `json:"parameters"`           // Parameter layout
	Metadata       map[string]string `json:"metadata"`             // Custom metadata
	CheckpointMeta *CheckpointMeta   `json:"checkpoint,omitempty"` // Training state (optional)
}

// CheckpointMeta contains training state information for checkpoints.
type CheckpointMeta struct {
	Epoch           int                `json:"epoch"`            // Training epoch number
	Loss            float64            `json:"loss"`             // Loss value at checkpoint
	OptimizerType   string             `json:"optimizer_type"`   // Optimizer type ("SGD", "Adam")
	OptimizerConfig map[string]float64 `json:"optimizer_config"` // Optimizer hyperparameters
}

// ParamMeta locates one parameter in the data section.
type ParamMeta struct {
	Name   string `json:"name"`   // Parameter name (e.g., "0.layer0.n1.w0")
	Offset int64  `json:"offset"` // Byte offset from the start of the data section
}
