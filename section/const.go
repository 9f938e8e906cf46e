package section

const (
	// Bit masks of VocabFlag.Options
	FrequencyMask    = 0x0001 // Mask for frequency ordering bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReversedMask     = 0x0004 // Mask for reversed ordering bit (bit 2)
	ReservedBitsMask = 0x0008 // Mask for reserved bit (bit 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicVocabV1Opt is the version 1 magic number of the vocabulary blob format.
	MagicVocabV1Opt = 0xEC10
)

const (
	HeaderSize       = 32         // fixed header size in bytes
	DataOffsetOffset = HeaderSize // byte offset where the payload starts
	MaxEntryCount    = 1<<31 - 1  // maximum number of vocabulary entries
)
