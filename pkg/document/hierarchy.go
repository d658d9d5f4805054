package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

// AmbiguousNameError indicates that an operation needing a unique GameObject
// matched several. It lists every colliding anchor so that the caller can
// re-issue the operation with a fileID.
type AmbiguousNameError struct {
	// Name is the ambiguous GameObject name.
	Name string
	// FileIDs are the anchors of every match.
	FileIDs []string
}

// Error implements error.
func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("multiple GameObjects named %q: specify one of fileIDs %s", e.Name, strings.Join(e.FileIDs, ", "))
}

// digitsMatcher recognizes arguments that are fileIDs rather than names.
var digitsMatcher = regexp.MustCompile(`^\d+$`)

// FindGameObjectsByName returns every GameObject block whose m_Name line
// matches the specified name exactly.
func (d *Document) FindGameObjectsByName(name string) []*Block {
	pattern := regexp.MustCompile(`(?m)^ *m_Name: ` + regexp.QuoteMeta(name) + `$`)
	var matches []*Block
	for _, block := range d.blocks {
		if block.ClassID() == unity.ClassGameObject && pattern.MatchString(block.Raw()) {
			matches = append(matches, block)
		}
	}
	return matches
}

// FindTransformsByName returns, for every GameObject matching the specified
// name, the fileID of its Transform (the first m_Component entry).
func (d *Document) FindTransformsByName(name string) []string {
	var ids []string
	for _, gameObject := range d.FindGameObjectsByName(name) {
		if components := gameObject.ComponentIDs(); len(components) > 0 {
			ids = append(ids, components[0])
		}
	}
	return ids
}

// RequireUniqueGameObject resolves an argument that is either a fileID (all
// digits) or a GameObject name to exactly one GameObject block. A fileID
// must denote a GameObject; a name must match exactly once, and an ambiguous
// name fails with every colliding fileID listed.
func (d *Document) RequireUniqueGameObject(argument string) (*Block, error) {
	// Resolve fileID arguments through the index.
	if digitsMatcher.MatchString(argument) {
		block := d.FindByFileID(argument)
		if block == nil {
			return nil, fmt.Errorf("no object with fileID %s", argument)
		}
		if block.ClassID() != unity.ClassGameObject {
			return nil, fmt.Errorf("fileID %s is a %s, not a GameObject", argument, unity.ClassName(block.ClassID()))
		}
		return block, nil
	}

	// Resolve name arguments by scan.
	matches := d.FindGameObjectsByName(argument)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no GameObject named %q", argument)
	}
	if len(matches) > 1 {
		ids := make([]string, 0, len(matches))
		for _, match := range matches {
			ids = append(ids, match.FileID())
		}
		return nil, &AmbiguousNameError{Name: argument, FileIDs: ids}
	}

	// Success.
	return matches[0], nil
}

// RequireUniqueTransform resolves an argument (fileID or GameObject name) to
// exactly one Transform or RectTransform block. A fileID may denote the
// Transform itself or its GameObject, in which case the GameObject's first
// component must be a Transform.
func (d *Document) RequireUniqueTransform(argument string) (*Block, error) {
	if digitsMatcher.MatchString(argument) {
		block := d.FindByFileID(argument)
		if block == nil {
			return nil, fmt.Errorf("no object with fileID %s", argument)
		}
		if unity.IsTransformClass(block.ClassID()) {
			return block, nil
		}
		if block.ClassID() == unity.ClassGameObject {
			return d.transformOf(block)
		}
		return nil, fmt.Errorf("fileID %s is a %s, not a Transform or GameObject", argument, unity.ClassName(block.ClassID()))
	}

	// Resolve a name to its GameObject, then to the Transform.
	gameObject, err := d.RequireUniqueGameObject(argument)
	if err != nil {
		return nil, err
	}
	return d.transformOf(gameObject)
}

// transformOf resolves a GameObject block to its Transform: the first entry
// of m_Component, which must be a Transform or RectTransform.
func (d *Document) transformOf(gameObject *Block) (*Block, error) {
	components := gameObject.ComponentIDs()
	if len(components) == 0 {
		return nil, fmt.Errorf("GameObject %s has no components", gameObject.FileID())
	}
	transform := d.FindByFileID(components[0])
	if transform == nil {
		return nil, fmt.Errorf("GameObject %s references missing component %s", gameObject.FileID(), components[0])
	}
	if !unity.IsTransformClass(transform.ClassID()) {
		return nil, fmt.Errorf("first component of GameObject %s is a %s, not a Transform", gameObject.FileID(), unity.ClassName(transform.ClassID()))
	}
	return transform, nil
}

// GameObjectOf resolves a component block to its owning GameObject via the
// m_GameObject back-reference.
func (d *Document) GameObjectOf(component *Block) (*Block, error) {
	value, err := component.GetProperty("m_GameObject")
	if err != nil {
		return nil, fmt.Errorf("component %s has no m_GameObject reference", component.FileID())
	}
	fileID := ReferenceFileID(value)
	if fileID == "" || fileID == "0" {
		return nil, fmt.Errorf("component %s has no owning GameObject", component.FileID())
	}
	gameObject := d.FindByFileID(fileID)
	if gameObject == nil {
		return nil, fmt.Errorf("component %s references missing GameObject %s", component.FileID(), fileID)
	}
	return gameObject, nil
}

// ParentTransformID returns the fileID of a Transform's parent, or "0" for
// root transforms.
func (d *Document) ParentTransformID(transform *Block) string {
	value, err := transform.GetProperty("m_Father")
	if err != nil {
		return "0"
	}
	if fileID := ReferenceFileID(value); fileID != "" {
		return fileID
	}
	return "0"
}

// ChildTransformIDs returns the fileIDs in a Transform's m_Children list, in
// order.
func (d *Document) ChildTransformIDs(transform *Block) []string {
	length, err := transform.GetArrayLength("m_Children")
	if err != nil {
		return nil
	}
	var ids []string
	for index := 0; index < length; index++ {
		element, err := transform.GetArrayElement("m_Children", index)
		if err != nil {
			continue
		}
		if fileID := ReferenceFileID(element); fileID != "" && fileID != "0" {
			ids = append(ids, fileID)
		}
	}
	return ids
}

// AddChildToParent registers a child Transform in a parent Transform's
// m_Children list, converting the empty inline form to block form if
// necessary.
func (d *Document) AddChildToParent(parentID, childID string) error {
	parent := d.FindByFileID(parentID)
	if parent == nil {
		return fmt.Errorf("no Transform with fileID %s", parentID)
	}
	if err := parent.InsertArrayElement("m_Children", -1, Reference(childID)); err != nil {
		return fmt.Errorf("unable to register child %s under %s: %w", childID, parentID, err)
	}
	return nil
}

// RemoveChildFromParent removes a child Transform from a parent Transform's
// m_Children list. An emptied list collapses to []. Absence of the child is
// tolerated: destructive operations call this on best-effort closure sweeps.
func (d *Document) RemoveChildFromParent(parentID, childID string) error {
	parent := d.FindByFileID(parentID)
	if parent == nil {
		return fmt.Errorf("no Transform with fileID %s", parentID)
	}
	length, err := parent.GetArrayLength("m_Children")
	if err != nil {
		return fmt.Errorf("Transform %s has no m_Children list: %w", parentID, err)
	}
	for index := 0; index < length; index++ {
		element, err := parent.GetArrayElement("m_Children", index)
		if err != nil {
			return err
		}
		if ReferenceFileID(element) == childID {
			return parent.RemoveArrayElement("m_Children", index)
		}
	}
	return nil
}

// CollectHierarchy walks the transform hierarchy below the specified
// Transform and returns the closure of fileIDs a destructive operation must
// consider: every descendant Transform, each descendant's GameObject, and
// every component in those GameObjects' m_Component lists. The starting
// Transform itself is not included.
func (d *Document) CollectHierarchy(transformID string) []string {
	var closure []string
	seen := map[string]bool{}
	add := func(fileID string) {
		if fileID != "" && fileID != "0" && !seen[fileID] {
			seen[fileID] = true
			closure = append(closure, fileID)
		}
	}

	// Breadth-first walk over child transforms.
	queue := []string{transformID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		transform := d.FindByFileID(current)
		if transform == nil {
			continue
		}
		for _, childID := range d.ChildTransformIDs(transform) {
			child := d.FindByFileID(childID)
			if child == nil || seen[childID] {
				continue
			}
			add(childID)
			queue = append(queue, childID)

			// Gather the child's GameObject and its components.
			gameObject, err := d.GameObjectOf(child)
			if err != nil {
				continue
			}
			add(gameObject.FileID())
			for _, componentID := range gameObject.ComponentIDs() {
				add(componentID)
			}
		}
	}
	return closure
}

// CalculateRootOrder computes the sibling index a newly inserted Transform
// receives under the specified parent: the count of current root transforms
// for parent "0", or the length of the parent's m_Children list otherwise.
func (d *Document) CalculateRootOrder(parentID string) (int, error) {
	if parentID == "0" {
		count := 0
		for _, block := range d.blocks {
			if !unity.IsTransformClass(block.ClassID()) || block.Stripped() {
				continue
			}
			if d.ParentTransformID(block) == "0" {
				count++
			}
		}
		return count, nil
	}
	parent := d.FindByFileID(parentID)
	if parent == nil {
		return 0, fmt.Errorf("no Transform with fileID %s", parentID)
	}
	length, err := parent.GetArrayLength("m_Children")
	if err != nil {
		return 0, fmt.Errorf("Transform %s has no m_Children list: %w", parentID, err)
	}
	return length, nil
}

// FindPrefabRoot locates a prefab's root pair: the first non-stripped
// Transform with no parent, plus its GameObject and name. Prefab variants,
// whose roots are stripped handles, fall back to the first stripped pair
// with the name sourced from the PrefabInstance's m_Name modification (or
// "Variant" when no such modification exists).
func (d *Document) FindPrefabRoot() (*Block, *Block, string, error) {
	// Look for a full root transform first.
	for _, block := range d.blocks {
		if !unity.IsTransformClass(block.ClassID()) || block.Stripped() {
			continue
		}
		if d.ParentTransformID(block) != "0" {
			continue
		}
		gameObject, err := d.GameObjectOf(block)
		if err != nil {
			continue
		}
		name, err := gameObject.GetProperty("m_Name")
		if err != nil {
			name = ""
		}
		return gameObject, block, name, nil
	}

	// Variant fallback: the first stripped GameObject plus the stripped
	// Transform belonging to the same PrefabInstance. Stripped handles carry
	// no m_GameObject back-reference, so the pairing goes through
	// m_PrefabInstance.
	for _, block := range d.blocks {
		if block.ClassID() != unity.ClassGameObject || !block.Stripped() {
			continue
		}
		owner, err := block.GetProperty("m_PrefabInstance")
		if err != nil {
			continue
		}
		for _, candidate := range d.blocks {
			if !unity.IsTransformClass(candidate.ClassID()) || !candidate.Stripped() {
				continue
			}
			value, err := candidate.GetProperty("m_PrefabInstance")
			if err != nil || ReferenceFileID(value) != ReferenceFileID(owner) {
				continue
			}
			return block, candidate, d.variantName(), nil
		}
	}
	return nil, nil, "", fmt.Errorf("document has no prefab root")
}

// variantName extracts a variant prefab's name from its PrefabInstance's
// m_Name modification, defaulting to "Variant".
func (d *Document) variantName() string {
	for _, instance := range d.FindByClassID(unity.ClassPrefabInstance) {
		if value, ok := FindModificationValue(instance, "m_Name"); ok {
			return value
		}
	}
	return "Variant"
}
