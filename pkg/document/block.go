package document

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedBlock indicates block text whose first line is not a valid
// Unity stream document header.
var ErrMalformedBlock = errors.New("malformed block header")

// headerMatcher matches Unity stream document headers: a class identifier, a
// local anchor, and an optional stripped marker.
var headerMatcher = regexp.MustCompile(`^--- !u!(\d+) &(\d+)( stripped)?$`)

// Header holds the parsed form of a block's header line.
type Header struct {
	// ClassID is Unity's numeric type tag for the object.
	ClassID int
	// FileID is the local object anchor. It is carried as a decimal string
	// because Unity emits values beyond the safe integer range of many
	// runtimes; no code path may widen it to a float.
	FileID string
	// Stripped indicates a prefab-instance handle block that carries only
	// corresponding-source bookkeeping.
	Stripped bool
}

// PropertyFormat describes the serialized form detected for a compound
// property.
type PropertyFormat uint8

const (
	// FormatUnknown indicates a property whose form hasn't been detected.
	FormatUnknown PropertyFormat = iota
	// FormatInline indicates an inline flow value ({x: 0, y: 0, z: 0}).
	FormatInline
	// FormatBlock indicates a block-style nested value.
	FormatBlock
	// FormatScalar indicates a plain scalar value.
	FormatScalar
)

// Block is one Unity stream document: the header line plus every byte up to
// (but excluding) the next document separator. A block owns its text; all
// mutation happens through targeted text surgery so that untouched regions
// survive byte-for-byte.
type Block struct {
	// header is the parsed header line.
	header Header
	// raw is the verbatim block text, including the header line and the
	// trailing newline before the next separator.
	raw string
	// dirty tracks whether the raw text has changed since construction.
	dirty bool
	// formats memoizes the detected serialized form per property name.
	formats map[string]PropertyFormat
}

// NewBlock constructs a block from one raw chunk of a Unity stream. Windows
// line endings are collapsed to LF at construction; the surgical regexes all
// assume LF and CRLF preservation on write is deliberately dropped.
func NewBlock(raw string) (*Block, error) {
	block := &Block{
		raw:     strings.ReplaceAll(raw, "\r\n", "\n"),
		formats: make(map[string]PropertyFormat),
	}
	if err := block.parseHeader(); err != nil {
		return nil, err
	}
	return block, nil
}

// parseHeader parses and caches the block's header line.
func (b *Block) parseHeader() error {
	// Isolate the first line.
	line := b.raw
	if index := strings.IndexByte(line, '\n'); index >= 0 {
		line = line[:index]
	}

	// Match the header pattern.
	match := headerMatcher.FindStringSubmatch(line)
	if match == nil {
		return fmt.Errorf("%w: %q", ErrMalformedBlock, line)
	}

	// Convert the class identifier. The matcher guarantees digits.
	classID, err := strconv.Atoi(match[1])
	if err != nil {
		return fmt.Errorf("%w: class identifier overflow in %q", ErrMalformedBlock, line)
	}

	// Cache the parsed header.
	b.header = Header{
		ClassID:  classID,
		FileID:   match[2],
		Stripped: match[3] != "",
	}

	// Success.
	return nil
}

// Header returns the block's parsed header.
func (b *Block) Header() Header {
	return b.header
}

// ClassID returns the block's class identifier.
func (b *Block) ClassID() int {
	return b.header.ClassID
}

// FileID returns the block's local object anchor as a decimal string.
func (b *Block) FileID() string {
	return b.header.FileID
}

// Stripped reports whether the block is a stripped prefab-instance handle.
func (b *Block) Stripped() bool {
	return b.header.Stripped
}

// Raw returns the block's verbatim text.
func (b *Block) Raw() string {
	return b.raw
}

// Dirty reports whether the block's text has changed since construction.
// ReplaceRaw always marks the block dirty.
func (b *Block) Dirty() bool {
	return b.dirty
}

// Clone returns a byte-identical, fully independent copy of the block. The
// clone is not marked dirty.
func (b *Block) Clone() *Block {
	return &Block{
		header:  b.header,
		raw:     b.raw,
		formats: make(map[string]PropertyFormat),
	}
}

// ReplaceRaw replaces the block's entire text, re-parsing the header and
// discarding the memoized format map. The block is marked dirty.
func (b *Block) ReplaceRaw(raw string) error {
	// Stage the new text, but retain the old state in case the header turns
	// out to be invalid.
	previousHeader := b.header
	previousRaw := b.raw
	b.raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if err := b.parseHeader(); err != nil {
		b.raw = previousRaw
		b.header = previousHeader
		return err
	}

	// Invalidate caches and mark the block dirty.
	b.formats = make(map[string]PropertyFormat)
	b.dirty = true

	// Success.
	return nil
}

// setRaw applies a computed text mutation, marking the block dirty only if
// the text actually changed.
func (b *Block) setRaw(raw string) {
	if raw != b.raw {
		b.raw = raw
		b.dirty = true
	}
}

// bodyOffset returns the offset of the first byte after the header line.
func (b *Block) bodyOffset() int {
	if index := strings.IndexByte(b.raw, '\n'); index >= 0 {
		return index + 1
	}
	return len(b.raw)
}

// Body returns the block's text below the header line.
func (b *Block) Body() string {
	return b.raw[b.bodyOffset():]
}

// FormatOf reports the serialized form of the named property, memoizing the
// result. Reads and writes for a property always use the detected form; a
// write never changes the form.
func (b *Block) FormatOf(name string) PropertyFormat {
	// Check the memo.
	if format, ok := b.formats[name]; ok {
		return format
	}

	// Locate the key line.
	location, ok := b.findKey(b.bodyOffset(), len(b.raw), name)
	if !ok {
		return FormatUnknown
	}

	// Classify the value.
	var format PropertyFormat
	if strings.HasPrefix(location.value, "{") {
		format = FormatInline
	} else if location.value == "" {
		format = FormatBlock
	} else {
		format = FormatScalar
	}

	// Memoize and return.
	b.formats[name] = format
	return format
}
