package document

import (
	"regexp"
	"strings"
)

// fileIDRefMatcher matches intra-file references in block bodies. Unity
// serializes references as {fileID: N} or, for cross-file targets, as
// {fileID: N, guid: …, type: …}; negative identifiers occur in real assets.
var fileIDRefMatcher = regexp.MustCompile(`fileID: (-?\d+)`)

// ReferenceFileID extracts the fileID from a serialized reference value such
// as "{fileID: 400010}" or "{fileID: 100100000, guid: …, type: 3}". It
// returns an empty string if the value is not a reference.
func ReferenceFileID(value string) string {
	if !strings.HasPrefix(strings.TrimSpace(value), "{") {
		return ""
	}
	match := fileIDRefMatcher.FindStringSubmatch(value)
	if match == nil {
		return ""
	}
	return match[1]
}

// Reference renders a bare same-file reference for the specified fileID.
func Reference(fileID string) string {
	return "{fileID: " + fileID + "}"
}

// ExtractFileIDRefs returns every fileID referenced in the block's body (the
// header anchor is excluded), in order of appearance and with duplicates
// preserved. Null references ({fileID: 0}) are omitted.
func (b *Block) ExtractFileIDRefs() []string {
	var refs []string
	for _, match := range fileIDRefMatcher.FindAllStringSubmatch(b.Body(), -1) {
		if match[1] != "0" {
			refs = append(refs, match[1])
		}
	}
	return refs
}

// RemapFileID substitutes one fileID for another in both the block's header
// anchor and every body reference. The null reference "0" is never remapped;
// requesting it is a no-op rather than an error.
func (b *Block) RemapFileID(old, new string) {
	if old == "0" || old == new || old == "" {
		return
	}

	// Rewrite the header anchor if it matches.
	raw := b.raw
	headerEnd := strings.IndexByte(raw, '\n')
	if headerEnd < 0 {
		headerEnd = len(raw)
	}
	header := raw[:headerEnd]
	if b.header.FileID == old {
		header = strings.Replace(header, "&"+old, "&"+new, 1)
		b.header.FileID = new
	}

	// Rewrite body references, matching the identifier only when a
	// non-digit follows so that prefix collisions can't corrupt longer
	// identifiers.
	pattern := regexp.MustCompile(`fileID: ` + regexp.QuoteMeta(old) + `([^0-9])`)
	body := pattern.ReplaceAllString(raw[headerEnd:], "fileID: "+new+"$1")

	// Apply.
	b.setRaw(header + body)
}

// RemapFileIDs applies a fileID mapping to the block. The mapping is applied
// as simultaneous substitution: occurrences are rewritten in a single pass so
// that a new identifier can never be re-matched as a later old identifier.
func (b *Block) RemapFileIDs(mapping map[string]string) {
	if len(mapping) == 0 {
		return
	}

	// Rewrite the header anchor.
	raw := b.raw
	headerEnd := strings.IndexByte(raw, '\n')
	if headerEnd < 0 {
		headerEnd = len(raw)
	}
	header := raw[:headerEnd]
	if new, ok := mapping[b.header.FileID]; ok && b.header.FileID != "0" {
		header = strings.Replace(header, "&"+b.header.FileID, "&"+new, 1)
		b.header.FileID = new
	}

	// Rewrite body references in one pass.
	body := fileIDRefMatcher.ReplaceAllStringFunc(raw[headerEnd:], func(reference string) string {
		old := reference[len("fileID: "):]
		if old == "0" {
			return reference
		}
		if new, ok := mapping[old]; ok {
			return "fileID: " + new
		}
		return reference
	})

	// Apply.
	b.setRaw(header + body)
}

// componentEntryMatcher matches entries of a GameObject's m_Component list.
var componentEntryMatcher = regexp.MustCompile(`- component: {fileID: (-?\d+)}`)

// ComponentIDs returns the fileIDs listed in a GameObject block's
// m_Component back-reference list, in order. The first entry is the
// GameObject's Transform.
func (b *Block) ComponentIDs() []string {
	var ids []string
	for _, match := range componentEntryMatcher.FindAllStringSubmatch(b.raw, -1) {
		ids = append(ids, match[1])
	}
	return ids
}
