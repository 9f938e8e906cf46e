// Package section defines the binary header of a persisted vocabulary blob.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                    │
//	├─────────────────────────────────────────────┤
//	│ Payload (variable, optionally compressed)   │
//	│  - EntryCount length-prefixed values        │
//	│  - EntryCount uvarint occurrence counts     │
//	└─────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------------
//	0-1    | Options        | uint16 | Magic number and option bits (always LE)
//	2      | Compression    | uint8  | Payload compression type
//	3      | Reserved       | uint8  | Must be zero
//	4-7    | EntryCount     | uint32 | Number of distinct values
//	8-11   | DataOffset     | uint32 | Byte offset of the payload
//	12-15  | DataSize       | uint32 | Uncompressed payload size
//	16-19  | CompressedSize | uint32 | Stored payload size
//	20-23  | Checksum       | uint32 | xxHash64 of the uncompressed payload, folded to 32 bits
//	24-31  | TotalCount     | uint64 | Sum of occurrence counts
//
// # Options Format
//
//	Bit 0:     Frequency ordering (0=no, 1=yes)
//	Bit 1:     Endianness (0=little-endian, 1=big-endian)
//	Bit 2:     Reversed ordering (0=no, 1=yes)
//	Bit 3:     Reserved, must be zero
//	Bits 4-15: Magic number (0xEC10 for version 1)
//
// The Options field is always stored little-endian so the byte order of the
// remaining fields can be determined before they are read.
package section
