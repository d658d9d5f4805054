package update

import (
	"fmt"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// Edit is one entry of a batch: a property assignment on a block resolved by
// fileID or GameObject name.
type Edit struct {
	// Target is a fileID or a GameObject name.
	Target string
	// Property is the property path to set.
	Property string
	// Value is the new value.
	Value string
}

// BatchResult is the result of ApplyEdits.
type BatchResult struct {
	// Path is the edited file.
	Path string
	// Applied is the number of edits applied.
	Applied int
	// BytesWritten is the size of the saved document.
	BytesWritten int
}

// ApplyEdits applies a batch of property edits with a single load, a single
// validation, and a single atomic save: either every edit becomes durable or
// the file is left untouched. Each edit observes the same shape discipline
// as EditComponentByFileID.
func ApplyEdits(path string, edits []Edit, logger *logging.Logger) (*BatchResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return nil, fmt.Errorf("no edits to apply")
	}

	// Load the document once.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}

	// Apply every edit in memory.
	for position, edit := range edits {
		block, err := resolveEditTarget(doc, edit.Target)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", position, err)
		}
		if block.Stripped() {
			return nil, fmt.Errorf("edit %d: fileID %s is a stripped prefab handle; edit the PrefabInstance's overrides instead", position, block.FileID())
		}
		property, current, err := resolvePropertyName(block, edit.Property)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", position, err)
		}
		currentShape := classifyValue(current)
		if currentShape == shapeBlockCompound || !shapeCompatible(currentShape, classifyValue(edit.Value)) {
			return nil, fmt.Errorf("edit %d: %w", position, &TypeMismatchError{Property: property, Expected: shapeName(currentShape), Got: edit.Value})
		}
		if err := block.SetProperty(property, edit.Value); err != nil {
			return nil, fmt.Errorf("edit %d: %w", position, err)
		}
	}

	// Validate and persist once.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	serialized := doc.Serialize()
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("applied %d batched edits to %s", len(edits), path)

	// Success.
	return &BatchResult{
		Path:         path,
		Applied:      len(edits),
		BytesWritten: len(serialized),
	}, nil
}

// resolveEditTarget resolves a batch edit's target: a fileID of any block,
// or a GameObject name.
func resolveEditTarget(doc *document.Document, target string) (*document.Block, error) {
	if block := doc.FindByFileID(target); block != nil {
		return block, nil
	}
	return doc.RequireUniqueGameObject(target)
}

// resolvePropertyName applies the ordered property-name fallback (exact,
// then m_-prefixed) and returns the resolved name with its current value.
func resolvePropertyName(block *document.Block, property string) (string, string, error) {
	if property == "" {
		return "", "", fmt.Errorf("property name must not be empty")
	}
	candidates := []string{property}
	if !strings.HasPrefix(property, "m_") {
		candidates = append(candidates, "m_"+strings.ToUpper(property[:1])+property[1:])
	}
	for _, candidate := range candidates {
		if current, err := block.GetProperty(candidate); err == nil {
			return candidate, current, nil
		}
	}
	return "", "", fmt.Errorf("property %q not found on fileID %s; Unity serializes only non-default values; set the property in the editor once, then edit it here", property, block.FileID())
}
