package document

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/filesystem"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
)

// ErrInvalidDocument indicates a document that failed structural validation.
var ErrInvalidDocument = errors.New("invalid document")

// blockStartMatcher matches the start of a Unity stream document within a
// file.
var blockStartMatcher = regexp.MustCompile(`(?m)^--- !u!`)

// shortGUIDMatcher matches guid values whose hexadecimal run is 29 characters
// or fewer (a Unity GUID has 32). A truncated GUID is the classic
// symptom of a corrupting edit, so validation hunts for it explicitly.
var shortGUIDMatcher = regexp.MustCompile(`guid: ([0-9a-fA-F]{1,29})([^0-9a-fA-F]|$)`)

// Document is a mutable in-memory model of one Unity YAML file: an optional
// header (the %YAML/%TAG directives) followed by an ordered list of blocks.
// Immediately after load, the header plus the concatenated block texts equal
// the on-disk content byte-for-byte; edits only ever touch the blocks they
// target.
type Document struct {
	// path is the source path, empty for in-memory documents.
	path string
	// header is everything before the first block separator.
	header string
	// blocks is the ordered block list.
	blocks []*Block
	// index maps fileIDs to block positions. It is redundant with blocks and
	// rebuilt on every structural change.
	index map[string]int
	// dirty tracks structural changes (block insertion, removal,
	// replacement).
	dirty bool
}

// FromString builds a document from in-memory content. When validate is
// requested, structural validation runs after the parse and a failure is
// reported as ErrInvalidDocument.
func FromString(content string, validate bool) (*Document, error) {
	// Normalize line endings up front; every downstream regex assumes LF.
	content = strings.ReplaceAll(content, "\r\n", "\n")

	// Split on block separators. Everything before the first separator (the
	// %YAML and %TAG directives, typically) is the header.
	starts := blockStartMatcher.FindAllStringIndex(content, -1)
	doc := &Document{}
	if len(starts) == 0 {
		doc.header = content
	} else {
		doc.header = content[:starts[0][0]]
		for position, start := range starts {
			end := len(content)
			if position+1 < len(starts) {
				end = starts[position+1][0]
			}
			block, err := NewBlock(content[start[0]:end])
			if err != nil {
				return nil, err
			}
			doc.blocks = append(doc.blocks, block)
		}
	}

	// Build the fileID index.
	doc.rebuildIndex()

	// Validate if requested.
	if validate {
		if err := doc.Validate(); err != nil {
			return nil, err
		}
	}

	// Success.
	return doc, nil
}

// FromFile builds a document from a file on disk.
func FromFile(path string, validate bool) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	doc, err := FromString(string(content), validate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// rebuildIndex recomputes the fileID index from the current block list.
func (d *Document) rebuildIndex() {
	d.index = make(map[string]int, len(d.blocks))
	for position, block := range d.blocks {
		if block.FileID() != "0" {
			d.index[block.FileID()] = position
		}
	}
}

// Path returns the document's source path (empty for in-memory documents).
func (d *Document) Path() string {
	return d.path
}

// Header returns the document's header text.
func (d *Document) Header() string {
	return d.header
}

// Blocks returns the document's block list. The slice is the document's own;
// callers must not reorder it.
func (d *Document) Blocks() []*Block {
	return d.blocks
}

// Dirty reports whether the document's structure or any of its blocks have
// changed since load.
func (d *Document) Dirty() bool {
	if d.dirty {
		return true
	}
	for _, block := range d.blocks {
		if block.Dirty() {
			return true
		}
	}
	return false
}

// FindByFileID returns the block with the specified anchor, or nil if the
// document has no such block.
func (d *Document) FindByFileID(fileID string) *Block {
	if position, ok := d.index[fileID]; ok {
		return d.blocks[position]
	}
	return nil
}

// FindByClassID returns every block with the specified class identifier, in
// document order.
func (d *Document) FindByClassID(classID int) []*Block {
	var matches []*Block
	for _, block := range d.blocks {
		if block.ClassID() == classID {
			matches = append(matches, block)
		}
	}
	return matches
}

// AllFileIDs returns the anchors of every block, in document order.
func (d *Document) AllFileIDs() []string {
	ids := make([]string, 0, len(d.blocks))
	for _, block := range d.blocks {
		ids = append(ids, block.FileID())
	}
	return ids
}

// GenerateFileID draws a fresh fileID that collides with no anchor currently
// in the document.
func (d *Document) GenerateFileID() (string, error) {
	return identifier.NewFileID(func(candidate string) bool {
		_, taken := d.index[candidate]
		return taken
	})
}

// AppendBlock appends a block to the document.
func (d *Document) AppendBlock(block *Block) {
	d.blocks = append(d.blocks, block)
	if block.FileID() != "0" {
		d.index[block.FileID()] = len(d.blocks) - 1
	}
	d.dirty = true
}

// AppendRaw parses raw block text and appends the result.
func (d *Document) AppendRaw(raw string) (*Block, error) {
	block, err := NewBlock(raw)
	if err != nil {
		return nil, err
	}
	d.AppendBlock(block)
	return block, nil
}

// RemoveBlock removes the block with the specified anchor. It reports
// whether a block was removed.
func (d *Document) RemoveBlock(fileID string) bool {
	position, ok := d.index[fileID]
	if !ok {
		return false
	}
	d.blocks = append(d.blocks[:position], d.blocks[position+1:]...)
	d.rebuildIndex()
	d.dirty = true
	return true
}

// RemoveBlocks removes every block whose anchor appears in the specified
// set, returning the number removed.
func (d *Document) RemoveBlocks(fileIDs map[string]bool) int {
	if len(fileIDs) == 0 {
		return 0
	}
	kept := d.blocks[:0]
	removed := 0
	for _, block := range d.blocks {
		if fileIDs[block.FileID()] {
			removed++
		} else {
			kept = append(kept, block)
		}
	}
	d.blocks = kept
	if removed > 0 {
		d.rebuildIndex()
		d.dirty = true
	}
	return removed
}

// ReplaceBlock replaces the block at the specified position.
func (d *Document) ReplaceBlock(position int, block *Block) error {
	if position < 0 || position >= len(d.blocks) {
		return fmt.Errorf("block position %d out of range", position)
	}
	d.blocks[position] = block
	d.rebuildIndex()
	d.dirty = true
	return nil
}

// Validate performs the document's structural checks: the header must begin
// with the %YAML 1.1 directive, no guid value anywhere may be a run of 29 or
// fewer hexadecimal characters, and the count of Unity block headers must agree
// (within one) with the count of document separators.
func (d *Document) Validate() error {
	content := d.Serialize()

	// Check the header directive.
	if !strings.HasPrefix(d.header, "%YAML 1.1") {
		return fmt.Errorf("%w: header does not begin with %%YAML 1.1", ErrInvalidDocument)
	}

	// Hunt for truncated GUIDs.
	if match := shortGUIDMatcher.FindStringSubmatch(content); match != nil {
		return fmt.Errorf("%w: truncated guid value %q", ErrInvalidDocument, match[1])
	}

	// Check separator balance: every document separator should introduce a
	// Unity header. The counts agree exactly for well-formed files; the
	// one-count slack covers a header at the very first byte, which has no
	// preceding newline.
	headers := strings.Count(content, "--- !u!")
	separators := strings.Count(content, "\n---")
	if difference := headers - separators; difference < -1 || difference > 1 {
		return fmt.Errorf("%w: document separator imbalance (%d headers, %d separators)", ErrInvalidDocument, headers, separators)
	}

	// Success.
	return nil
}

// Serialize renders the document: the header followed by every block's raw
// text, in order.
func (d *Document) Serialize() string {
	var builder strings.Builder
	builder.WriteString(d.header)
	for _, block := range d.blocks {
		builder.WriteString(block.Raw())
	}
	return builder.String()
}

// Save writes the document atomically. An empty path saves to the document's
// source path; a non-empty path retargets the document.
func (d *Document) Save(path string) error {
	// Resolve the target path.
	if path == "" {
		path = d.path
	}
	if path == "" {
		return errors.New("document has no path")
	}

	// Write atomically.
	if err := filesystem.WriteFileAtomic(path, []byte(d.Serialize()), 0644); err != nil {
		return fmt.Errorf("unable to save document: %w", err)
	}

	// Track the new location.
	d.path = path

	// Success.
	return nil
}
