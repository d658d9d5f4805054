package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

// Modification is one override entry in a PrefabInstance's
// m_Modification.m_Modifications list.
type Modification struct {
	// Target is the serialized target reference
	// ({fileID: N, guid: …, type: …}).
	Target string
	// PropertyPath is the overridden property's path within the target.
	PropertyPath string
	// Value is the override value (empty for pure object-reference
	// overrides).
	Value string
	// ObjectReference is the serialized object reference ({fileID: 0} when
	// the override carries a plain value).
	ObjectReference string
}

// modificationFieldMatcher matches one field line within a parsed override
// entry.
var modificationFieldMatcher = regexp.MustCompile(`^ *(target|propertyPath|value|objectReference): ?(.*)$`)

// guidFieldMatcher extracts the guid from a serialized cross-file reference.
var guidFieldMatcher = regexp.MustCompile(`guid: ([0-9a-f]{32})`)

// ParseModifications parses every override entry in a PrefabInstance block,
// in order.
func ParseModifications(instance *Block) []Modification {
	length, err := instance.GetArrayLength("m_Modifications")
	if err != nil {
		return nil
	}
	var modifications []Modification
	for index := 0; index < length; index++ {
		element, err := instance.GetArrayElement("m_Modifications", index)
		if err != nil {
			continue
		}
		var modification Modification
		for _, line := range strings.Split(element, "\n") {
			match := modificationFieldMatcher.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			switch match[1] {
			case "target":
				modification.Target = match[2]
			case "propertyPath":
				modification.PropertyPath = match[2]
			case "value":
				modification.Value = match[2]
			case "objectReference":
				modification.ObjectReference = match[2]
			}
		}
		modifications = append(modifications, modification)
	}
	return modifications
}

// FindModificationValue returns the override value recorded for the
// specified property path, if any.
func FindModificationValue(instance *Block, propertyPath string) (string, bool) {
	for _, modification := range ParseModifications(instance) {
		if modification.PropertyPath == propertyPath {
			return modification.Value, true
		}
	}
	return "", false
}

// TransformParentID returns the fileID of the host-scene Transform a
// PrefabInstance is parented under, or "0" for root instances.
func TransformParentID(instance *Block) string {
	value, err := instance.GetProperty("m_Modification.m_TransformParent")
	if err != nil {
		return "0"
	}
	if fileID := ReferenceFileID(value); fileID != "" {
		return fileID
	}
	return "0"
}

// SourcePrefabGUID extracts the source prefab's GUID from a PrefabInstance's
// m_SourcePrefab reference.
func SourcePrefabGUID(instance *Block) string {
	value, err := instance.GetProperty("m_SourcePrefab")
	if err != nil {
		return ""
	}
	match := guidFieldMatcher.FindStringSubmatch(value)
	if match == nil {
		return ""
	}
	return match[1]
}

// FindPrefabInstance resolves an argument that is either a fileID or a name
// to a PrefabInstance block. Name arguments match against each instance's
// m_Name modification, which is how a renamed instance records its name.
func (d *Document) FindPrefabInstance(argument string) (*Block, error) {
	if digitsMatcher.MatchString(argument) {
		block := d.FindByFileID(argument)
		if block == nil {
			return nil, fmt.Errorf("no object with fileID %s", argument)
		}
		if block.ClassID() != unity.ClassPrefabInstance {
			return nil, fmt.Errorf("fileID %s is not a PrefabInstance", argument)
		}
		return block, nil
	}
	for _, instance := range d.FindByClassID(unity.ClassPrefabInstance) {
		if value, ok := FindModificationValue(instance, "m_Name"); ok && value == argument {
			return instance, nil
		}
	}
	return nil, fmt.Errorf("no PrefabInstance named %q", argument)
}

// StrippedBlocksOf returns every stripped block whose m_PrefabInstance
// reference points at the specified PrefabInstance.
func (d *Document) StrippedBlocksOf(instanceID string) []*Block {
	var matches []*Block
	for _, block := range d.blocks {
		if !block.Stripped() {
			continue
		}
		value, err := block.GetProperty("m_PrefabInstance")
		if err != nil {
			continue
		}
		if ReferenceFileID(value) == instanceID {
			matches = append(matches, block)
		}
	}
	return matches
}
