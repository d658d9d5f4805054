package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// arrayPathMatcher matches array-indexed property paths in Unity's serialized
// form (m_Materials.Array.data[0]).
var arrayPathMatcher = regexp.MustCompile(`^(.+)\.Array\.data\[(\d+)\]$`)

// keyMatchers caches the compiled per-key line matchers. findKey sits on the
// hot path of every property lookup (a single hierarchy walk routes through
// it hundreds of times), and the key vocabulary of a document is tiny, so
// the cache stays small and hits almost always.
var keyMatchers sync.Map

// keyMatcher returns the line-anchored matcher for a key, compiling it on
// first use.
func keyMatcher(key string) *regexp.Regexp {
	if cached, ok := keyMatchers.Load(key); ok {
		return cached.(*regexp.Regexp)
	}
	matcher := regexp.MustCompile(`(?m)^( *)` + regexp.QuoteMeta(key) + `:(.*)$`)
	cached, _ := keyMatchers.LoadOrStore(key, matcher)
	return cached.(*regexp.Regexp)
}

// keyLocation describes a located key line within a block's raw text. All
// offsets are absolute within the raw text.
type keyLocation struct {
	// lineStart is the offset of the first byte of the key line.
	lineStart int
	// indent is the number of leading spaces on the key line.
	indent int
	// valueStart is the offset just past the key's colon.
	valueStart int
	// lineEnd is the offset of the key line's terminating newline (or the
	// end of the raw text).
	lineEnd int
	// value is the trimmed value text on the key line (empty for block-style
	// compound values).
	value string
}

// findKey locates the first line within raw[from:to) whose content is the
// specified key (preceded only by indentation) followed by a colon. This is
// the line-anchored regex search that the whole property engine builds on.
func (b *Block) findKey(from, to int, key string) (keyLocation, bool) {
	match := keyMatcher(key).FindStringSubmatchIndex(b.raw[from:to])
	if match == nil {
		return keyLocation{}, false
	}
	location := keyLocation{
		lineStart:  from + match[0],
		indent:     match[3] - match[2],
		valueStart: from + match[4],
		lineEnd:    from + match[5],
		value:      strings.TrimSpace(b.raw[from+match[4] : from+match[5]]),
	}
	return location, true
}

// childWindow computes the window of lines nested under a block-style key:
// everything from the line after the key up to (but excluding) the first
// non-empty line whose indentation falls back to or below the key's. It also
// reports the child indentation, derived from the first non-empty line whose
// indentation exceeds the key's. If the key has no nested lines, the window
// is empty and the child indentation is -1.
func (b *Block) childWindow(location keyLocation) (int, int, int) {
	start := location.lineEnd
	if start < len(b.raw) {
		start++
	}
	childIndent := -1
	offset := start
	for offset < len(b.raw) {
		// Measure the current line.
		lineEnd := strings.IndexByte(b.raw[offset:], '\n')
		if lineEnd < 0 {
			lineEnd = len(b.raw)
		} else {
			lineEnd += offset
		}
		line := b.raw[offset:lineEnd]
		trimmed := strings.TrimLeft(line, " ")

		// Skip blank lines without ending the window.
		if trimmed == "" {
			offset = lineEnd + 1
			continue
		}

		// A non-empty line at or above the key's level ends the window.
		indent := len(line) - len(trimmed)
		if indent <= location.indent {
			return start, offset, childIndent
		}

		// The first nested line establishes the child indentation.
		if childIndent < 0 {
			childIndent = indent
		}

		// Advance.
		offset = lineEnd + 1
	}
	return start, len(b.raw), childIndent
}

// inlineFieldBounds locates the value bounds of a key within the inline flow
// object spanning raw[open:close) (brace-inclusive). It returns absolute
// offsets for the value text, which excludes surrounding separators and
// whitespace, and handles nested braces and brackets.
func inlineFieldBounds(raw string, open, end int, key string) (int, int, bool) {
	// Scan past the opening brace.
	offset := open + 1
	for offset < end-1 {
		// Skip separators and whitespace.
		for offset < end-1 && (raw[offset] == ',' || raw[offset] == ' ') {
			offset++
		}

		// Read the entry key.
		colon := strings.IndexByte(raw[offset:end-1], ':')
		if colon < 0 {
			break
		}
		entryKey := strings.TrimSpace(raw[offset : offset+colon])

		// Find the start of the entry value.
		valueStart := offset + colon + 1
		for valueStart < end-1 && raw[valueStart] == ' ' {
			valueStart++
		}

		// Find the end of the entry value, tracking nesting depth.
		valueEnd := valueStart
		depth := 0
		for valueEnd < end-1 {
			switch raw[valueEnd] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			case ',':
				if depth == 0 {
					goto scanned
				}
			}
			valueEnd++
		}
	scanned:

		// Check for a match.
		if entryKey == key {
			return valueStart, valueEnd, true
		}

		// Advance past the entry.
		offset = valueEnd
	}
	return 0, 0, false
}

// propertyLocation describes a resolved property leaf.
type propertyLocation struct {
	// valueStart and valueEnd bound the replaceable value text.
	valueStart int
	valueEnd   int
	// inline indicates that the bounds lie inside an inline flow object and
	// must be replaced exactly (no colon-space handling).
	inline bool
	// compound indicates a block-style compound value; valueStart/valueEnd
	// bound the nested child window instead of a scalar.
	compound bool
}

// locateProperty resolves a simple or dotted property path to the bounds of
// its value text. Array-indexed paths are handled by the array operations,
// not here.
func (b *Block) locateProperty(path string) (propertyLocation, error) {
	segments := strings.Split(path, ".")
	from, to := b.bodyOffset(), len(b.raw)
	for index, segment := range segments {
		// Locate the segment's key within the current window.
		location, ok := b.findKey(from, to, segment)
		if !ok {
			return propertyLocation{}, fmt.Errorf("property %q not found (missing %q)", path, segment)
		}
		last := index == len(segments)-1

		// Inline flow value: resolve every remaining segment inside the
		// braces and return exact bounds.
		if strings.HasPrefix(location.value, "{") {
			if last {
				return propertyLocation{valueStart: location.valueStart, valueEnd: location.lineEnd}, nil
			}
			open := location.valueStart + strings.IndexByte(b.raw[location.valueStart:location.lineEnd], '{')
			close := location.lineEnd
			for nested := index + 1; nested < len(segments); nested++ {
				valueStart, valueEnd, ok := inlineFieldBounds(b.raw, open, close, segments[nested])
				if !ok {
					return propertyLocation{}, fmt.Errorf("property %q not found (missing %q)", path, segments[nested])
				}
				if nested == len(segments)-1 {
					return propertyLocation{valueStart: valueStart, valueEnd: valueEnd, inline: true}, nil
				}
				open, close = valueStart, valueEnd
			}
		}

		// Scalar value: only valid as the final segment.
		if location.value != "" {
			if !last {
				return propertyLocation{}, fmt.Errorf("property %q resolves through scalar %q", path, segment)
			}
			return propertyLocation{valueStart: location.valueStart, valueEnd: location.lineEnd}, nil
		}

		// Block-style compound value: either descend or report the window.
		start, end, _ := b.childWindow(location)
		if last {
			return propertyLocation{valueStart: start, valueEnd: end, compound: true}, nil
		}
		from, to = start, end
	}
	return propertyLocation{}, fmt.Errorf("property %q not found", path)
}

// GetProperty returns the serialized value of the property at the specified
// path. Three path shapes are recognized: simple keys (m_Name), dotted paths
// into inline or block-style compounds (m_LocalPosition.x), and array indices
// (m_Materials.Array.data[0]). Scalar and inline values are returned as the
// text after the colon; block-style compound values are returned as their
// nested lines verbatim.
func (b *Block) GetProperty(path string) (string, error) {
	// Handle array-indexed paths.
	if match := arrayPathMatcher.FindStringSubmatch(path); match != nil {
		index, err := strconv.Atoi(match[2])
		if err != nil {
			return "", fmt.Errorf("malformed array index in %q: %w", path, err)
		}
		return b.GetArrayElement(match[1], index)
	}

	// Resolve the path.
	location, err := b.locateProperty(path)
	if err != nil {
		return "", err
	}

	// Extract the value.
	if location.compound {
		return strings.TrimRight(b.raw[location.valueStart:location.valueEnd], "\n"), nil
	}
	return strings.TrimSpace(b.raw[location.valueStart:location.valueEnd]), nil
}

// HasProperty reports whether the property at the specified path resolves.
func (b *Block) HasProperty(path string) bool {
	if match := arrayPathMatcher.FindStringSubmatch(path); match != nil {
		index, err := strconv.Atoi(match[2])
		if err != nil {
			return false
		}
		_, err = b.GetArrayElement(match[1], index)
		return err == nil
	}
	_, err := b.locateProperty(path)
	return err == nil
}

// SetProperty replaces the value of the property at the specified path. The
// property's detected serialized form is preserved: inline sub-fields are
// edited in place within their braces, keeping every other sub-field, their
// order, and surrounding whitespace; scalar line values are replaced after
// the colon. Setting a block-style compound to a scalar is rejected.
func (b *Block) SetProperty(path, value string) error {
	// Handle array-indexed paths.
	if match := arrayPathMatcher.FindStringSubmatch(path); match != nil {
		index, err := strconv.Atoi(match[2])
		if err != nil {
			return fmt.Errorf("malformed array index in %q: %w", path, err)
		}
		return b.SetArrayElement(match[1], index, value)
	}

	// Resolve the path.
	location, err := b.locateProperty(path)
	if err != nil {
		return err
	}

	// Refuse to collapse a block-style compound into a scalar line.
	if location.compound {
		return fmt.Errorf("property %q is a block-style compound; set its sub-fields individually", path)
	}

	// Apply the edit.
	if location.inline {
		b.setRaw(b.raw[:location.valueStart] + value + b.raw[location.valueEnd:])
	} else {
		b.setRaw(b.raw[:location.valueStart] + " " + value + b.raw[location.valueEnd:])
	}

	// Success.
	return nil
}

// AppendProperty appends a new top-level property line to the end of the
// block, using the indentation of the block's m_ObjectHideFlags line (two
// spaces when the block has none). It is
// used to materialize properties that Unity omitted because they held
// default values.
func (b *Block) AppendProperty(key, value string) {
	// Derive the top-level indentation from the m_ObjectHideFlags line,
	// defaulting to Unity's two spaces.
	indent := "  "
	if location, ok := b.findKey(b.bodyOffset(), len(b.raw), "m_ObjectHideFlags"); ok {
		indent = strings.Repeat(" ", location.indent)
	}

	// Append the line, preserving the trailing-newline policy of the block.
	raw := b.raw
	if !strings.HasSuffix(raw, "\n") {
		raw += "\n"
	}
	b.setRaw(raw + indent + key + ": " + value + "\n")
}
