package document

import (
	"fmt"
	"strings"
)

// elementSpan bounds one element of a block-style sequence, from the start of
// its "- " line through the end of its final continuation line (newline
// inclusive).
type elementSpan struct {
	start int
	end   int
}

// arrayLayout captures the serialized layout of a sequence-valued property.
type arrayLayout struct {
	// location is the key line.
	location keyLocation
	// emptyFlow indicates the inline empty form (name: []).
	emptyFlow bool
	// inlineFlow indicates a populated inline form (name: [a, b]).
	inlineFlow bool
	// spans are the block-form element spans (nil for flow forms).
	spans []elementSpan
	// elementIndent is the indentation of block-form elements, derived from
	// the first existing element (-1 for flow forms).
	elementIndent int
}

// analyzeArray locates a sequence-valued property and classifies its layout.
func (b *Block) analyzeArray(name string) (arrayLayout, error) {
	// Locate the key.
	location, ok := b.findKey(b.bodyOffset(), len(b.raw), name)
	if !ok {
		return arrayLayout{}, fmt.Errorf("array property %q not found", name)
	}
	layout := arrayLayout{location: location, elementIndent: -1}

	// Classify flow forms.
	if location.value == "[]" {
		layout.emptyFlow = true
		return layout, nil
	}
	if strings.HasPrefix(location.value, "[") {
		layout.inlineFlow = true
		return layout, nil
	}
	if location.value != "" {
		return arrayLayout{}, fmt.Errorf("property %q is not a sequence", name)
	}

	// Walk block-form elements. Elements are "- " lines whose indentation
	// matches the first element's; deeper lines are continuations of the
	// preceding element.
	offset := location.lineEnd
	if offset < len(b.raw) {
		offset++
	}
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
		indent := len(line) - len(trimmed)

		// A blank line ends the sequence.
		if trimmed == "" {
			break
		}

		if strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			// Establish the element indentation from the first element.
			if layout.elementIndent < 0 {
				if indent < location.indent {
					break
				}
				layout.elementIndent = indent
			}

			// An element at the established indentation starts a new span;
			// anything else ends the sequence.
			if indent == layout.elementIndent {
				layout.spans = append(layout.spans, elementSpan{start: offset})
			} else if indent < layout.elementIndent {
				break
			}
		} else {
			// Non-element lines are continuations only while they sit deeper
			// than the element indentation.
			if layout.elementIndent < 0 || indent <= layout.elementIndent {
				break
			}
		}

		// Extend the current span.
		next := lineEnd
		if next < len(b.raw) {
			next++
		}
		if len(layout.spans) > 0 {
			layout.spans[len(layout.spans)-1].end = next
		}
		offset = next
	}

	// Success.
	return layout, nil
}

// splitInlineFlow splits the contents of a populated inline sequence into
// element strings, honoring brace and bracket nesting.
func splitInlineFlow(value string) []string {
	inner := strings.TrimSpace(value)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")
	if strings.TrimSpace(inner) == "" {
		return nil
	}
	var elements []string
	depth := 0
	start := 0
	for index := 0; index < len(inner); index++ {
		switch inner[index] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ',':
			if depth == 0 {
				elements = append(elements, strings.TrimSpace(inner[start:index]))
				start = index + 1
			}
		}
	}
	elements = append(elements, strings.TrimSpace(inner[start:]))
	return elements
}

// GetArrayLength returns the number of elements in a sequence-valued
// property.
func (b *Block) GetArrayLength(name string) (int, error) {
	layout, err := b.analyzeArray(name)
	if err != nil {
		return 0, err
	}
	if layout.emptyFlow {
		return 0, nil
	}
	if layout.inlineFlow {
		return len(splitInlineFlow(layout.location.value)), nil
	}
	return len(layout.spans), nil
}

// GetArrayElement returns the text of the element at the specified index. For
// block-form elements the leading "- " marker is stripped and continuation
// lines are included verbatim.
func (b *Block) GetArrayElement(name string, index int) (string, error) {
	layout, err := b.analyzeArray(name)
	if err != nil {
		return "", err
	}
	if layout.inlineFlow {
		elements := splitInlineFlow(layout.location.value)
		if index < 0 || index >= len(elements) {
			return "", fmt.Errorf("index %d out of range for %q (length %d)", index, name, len(elements))
		}
		return elements[index], nil
	}
	if index < 0 || index >= len(layout.spans) {
		return "", fmt.Errorf("index %d out of range for %q (length %d)", index, name, len(layout.spans))
	}
	span := layout.spans[index]
	text := strings.TrimRight(b.raw[span.start:span.end], "\n")
	text = strings.TrimLeft(text, " ")
	text = strings.TrimPrefix(text, "-")
	return strings.TrimPrefix(text, " "), nil
}

// renderElement renders a sequence element at the specified indentation. The
// first line receives the "- " marker; continuation lines are indented one
// level deeper.
func renderElement(indent int, value string) string {
	prefix := strings.Repeat(" ", indent)
	lines := strings.Split(value, "\n")
	result := prefix + "- " + lines[0] + "\n"
	for _, line := range lines[1:] {
		result += prefix + "  " + line + "\n"
	}
	return result
}

// InsertArrayElement inserts an element into a sequence-valued property at
// the specified index (-1 appends). The inline empty form is converted to
// block form on first insert, with elements indented to match the key; block
// form splices a new "- " line at the requested position using the
// indentation of the first existing element.
func (b *Block) InsertArrayElement(name string, index int, value string) error {
	layout, err := b.analyzeArray(name)
	if err != nil {
		return err
	}

	// Convert the empty inline form to block form.
	if layout.emptyFlow {
		element := renderElement(layout.location.indent, value)
		lineEnd := layout.location.lineEnd
		end := lineEnd
		if end < len(b.raw) {
			end++
		}
		b.setRaw(b.raw[:layout.location.valueStart] + "\n" + element + b.raw[end:])
		return nil
	}

	// Splice into a populated inline form.
	if layout.inlineFlow {
		elements := splitInlineFlow(layout.location.value)
		if index < 0 || index > len(elements) {
			index = len(elements)
		}
		elements = append(elements[:index], append([]string{value}, elements[index:]...)...)
		rendered := " [" + strings.Join(elements, ", ") + "]"
		b.setRaw(b.raw[:layout.location.valueStart] + rendered + b.raw[layout.location.lineEnd:])
		return nil
	}

	// Splice into block form. A block-style key with no elements yet (an
	// uncommon but observed emitter state) behaves like the empty inline
	// form: the element lands directly under the key at the key's indent.
	elementIndent := layout.elementIndent
	if elementIndent < 0 {
		elementIndent = layout.location.indent
	}
	element := renderElement(elementIndent, value)
	var at int
	if len(layout.spans) == 0 {
		at = layout.location.lineEnd
		if at < len(b.raw) {
			at++
		}
	} else if index < 0 || index >= len(layout.spans) {
		at = layout.spans[len(layout.spans)-1].end
	} else {
		at = layout.spans[index].start
	}
	b.setRaw(b.raw[:at] + element + b.raw[at:])

	// Success.
	return nil
}

// SetArrayElement replaces the element at the specified index. Block-form
// replacement preserves the element's "- " line and swaps only its text;
// multi-line replacement values are re-indented like insertions.
func (b *Block) SetArrayElement(name string, index int, value string) error {
	layout, err := b.analyzeArray(name)
	if err != nil {
		return err
	}
	if layout.inlineFlow {
		elements := splitInlineFlow(layout.location.value)
		if index < 0 || index >= len(elements) {
			return fmt.Errorf("index %d out of range for %q (length %d)", index, name, len(elements))
		}
		elements[index] = value
		rendered := " [" + strings.Join(elements, ", ") + "]"
		b.setRaw(b.raw[:layout.location.valueStart] + rendered + b.raw[layout.location.lineEnd:])
		return nil
	}
	if index < 0 || index >= len(layout.spans) {
		return fmt.Errorf("index %d out of range for %q (length %d)", index, name, len(layout.spans))
	}
	span := layout.spans[index]
	b.setRaw(b.raw[:span.start] + renderElement(layout.elementIndent, value) + b.raw[span.end:])

	// Success.
	return nil
}

// RemoveArrayElement removes the element at the specified index. Removing the
// final element collapses the sequence to the inline empty form (name: []),
// matching Unity's own emitter.
func (b *Block) RemoveArrayElement(name string, index int) error {
	layout, err := b.analyzeArray(name)
	if err != nil {
		return err
	}

	// Handle inline forms.
	if layout.emptyFlow {
		return fmt.Errorf("index %d out of range for %q (length 0)", index, name)
	}
	if layout.inlineFlow {
		elements := splitInlineFlow(layout.location.value)
		if index < 0 || index >= len(elements) {
			return fmt.Errorf("index %d out of range for %q (length %d)", index, name, len(elements))
		}
		elements = append(elements[:index], elements[index+1:]...)
		rendered := " []"
		if len(elements) > 0 {
			rendered = " [" + strings.Join(elements, ", ") + "]"
		}
		b.setRaw(b.raw[:layout.location.valueStart] + rendered + b.raw[layout.location.lineEnd:])
		return nil
	}

	// Handle block form.
	if index < 0 || index >= len(layout.spans) {
		return fmt.Errorf("index %d out of range for %q (length %d)", index, name, len(layout.spans))
	}
	span := layout.spans[index]
	if len(layout.spans) == 1 {
		// Collapse to the inline empty form.
		b.setRaw(b.raw[:layout.location.valueStart] + " []\n" + b.raw[span.end:])
		return nil
	}
	b.setRaw(b.raw[:span.start] + b.raw[span.end:])

	// Success.
	return nil
}
