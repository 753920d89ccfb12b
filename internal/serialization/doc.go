// Package serialization provides the .mynet checkpoint format for model
// parameters.
//
// A checkpoint stores a state dictionary (parameter name to value) plus a JSON
// header describing the model:
//
//	Format Structure:
//	  [64 bytes: fixed header]
//	    0x00-0x03: Magic "MYNT"
//	    0x04-0x07: Version (uint32 LE)
//	    0x08-0x0B: Flags (uint32 LE)
//	    0x0C-0x0F: Reserved
//	    0x10-0x17: Header size (uint64 LE)
//	    0x18-0x1F: Data size (uint64 LE)
//	    0x20-0x3F: SHA-256 of the data section
//	  [Header: JSON metadata]
//	  [Padding to a 64-byte boundary]
//	  [Data: float64 LE values, one per parameter, in header order]
//
// Parameters are written sorted by name, so saving the same state twice
// produces the same data section.
//
// Example usage:
//
//	// Save a model
//	err := serialization.WriteFile("xor.mynet", model.StateDict(), serialization.Header{
//	    ModelType: "MLP",
//	    Metadata:  map[string]string{"sizes": "2,8,1"},
//	})
//
//	// Load a model
//	state, header, err := serialization.ReadFile("xor.mynet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = model.LoadStateDict(state)
package serialization
