package document

import (
	"errors"
	"strings"
	"testing"
)

// testTransformBlock is a representative Transform block.
const testTransformBlock = `--- !u!4 &301
Transform:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: 300}
  m_LocalRotation: {x: 0, y: 0, z: 0, w: 1}
  m_LocalPosition: {x: 0, y: 0, z: 0}
  m_LocalScale: {x: 1, y: 1, z: 1}
  m_Children: []
  m_Father: {fileID: 0}
  m_RootOrder: 2
  m_LocalEulerAnglesHint: {x: 0, y: 0, z: 0}
`

// testLightBlock is a block with a block-style compound property.
const testLightBlock = `--- !u!108 &202
Light:
  m_ObjectHideFlags: 0
  m_GameObject: {fileID: 200}
  m_Enabled: 1
  m_Type: 1
  m_Shadows:
    m_Type: 2
    m_Resolution: -1
    m_Strength: 1
  m_Intensity: 1
`

// TestNewBlockParsesHeader tests header parsing.
func TestNewBlockParsesHeader(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if block.ClassID() != 4 {
		t.Error("class identifier mismatch:", block.ClassID(), "!= 4")
	}
	if block.FileID() != "301" {
		t.Error("fileID mismatch:", block.FileID(), "!= 301")
	}
	if block.Stripped() {
		t.Error("block unexpectedly stripped")
	}
	if block.Dirty() {
		t.Error("fresh block unexpectedly dirty")
	}
}

// TestNewBlockStripped tests parsing of stripped headers.
func TestNewBlockStripped(t *testing.T) {
	block, err := NewBlock("--- !u!1 &42 stripped\nGameObject:\n  m_PrefabInstance: {fileID: 7}\n")
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if !block.Stripped() {
		t.Error("stripped marker not detected")
	}
}

// TestNewBlockMalformed tests rejection of invalid headers.
func TestNewBlockMalformed(t *testing.T) {
	if _, err := NewBlock("GameObject:\n  m_Name: x\n"); !errors.Is(err, ErrMalformedBlock) {
		t.Error("expected ErrMalformedBlock, got:", err)
	}
	if _, err := NewBlock("--- !u!x &1\n"); !errors.Is(err, ErrMalformedBlock) {
		t.Error("expected ErrMalformedBlock for non-numeric class, got:", err)
	}
}

// TestNewBlockNormalizesLineEndings tests CRLF collapse at construction.
func TestNewBlockNormalizesLineEndings(t *testing.T) {
	block, err := NewBlock("--- !u!4 &9\r\nTransform:\r\n  m_RootOrder: 0\r\n")
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if strings.Contains(block.Raw(), "\r") {
		t.Error("carriage returns survived construction")
	}
}

// TestBlockClone tests that clones are byte-identical, clean, and
// independent.
func TestBlockClone(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	clone := block.Clone()
	if clone.Raw() != block.Raw() {
		t.Error("clone is not byte-identical")
	}
	if clone.Dirty() {
		t.Error("clone unexpectedly dirty")
	}
	if err := clone.SetProperty("m_RootOrder", "5"); err != nil {
		t.Fatal("SetProperty on clone failed:", err)
	}
	if block.Raw() == clone.Raw() {
		t.Error("mutating the clone affected the original")
	}
	if block.Dirty() {
		t.Error("original marked dirty by clone mutation")
	}
}

// TestGetPropertySimple tests simple property reads.
func TestGetPropertySimple(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	value, err := block.GetProperty("m_RootOrder")
	if err != nil {
		t.Fatal("GetProperty failed:", err)
	}
	if value != "2" {
		t.Error("value mismatch:", value, "!= 2")
	}
}

// TestGetPropertyDottedInline tests dotted reads into inline flow objects.
func TestGetPropertyDottedInline(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	value, err := block.GetProperty("m_LocalScale.y")
	if err != nil {
		t.Fatal("GetProperty failed:", err)
	}
	if value != "1" {
		t.Error("value mismatch:", value, "!= 1")
	}
	whole, err := block.GetProperty("m_LocalPosition")
	if err != nil {
		t.Fatal("GetProperty failed:", err)
	}
	if whole != "{x: 0, y: 0, z: 0}" {
		t.Error("inline value mismatch:", whole)
	}
}

// TestGetPropertyDottedBlock tests dotted reads through block-style
// compounds.
func TestGetPropertyDottedBlock(t *testing.T) {
	block, err := NewBlock(testLightBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	value, err := block.GetProperty("m_Shadows.m_Resolution")
	if err != nil {
		t.Fatal("GetProperty failed:", err)
	}
	if value != "-1" {
		t.Error("value mismatch:", value, "!= -1")
	}
}

// TestSetPropertyInlinePreservesSiblings tests that inline sub-field edits
// preserve every other sub-field, their order, and spacing.
func TestSetPropertyInlinePreservesSiblings(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if err := block.SetProperty("m_LocalPosition.x", "5"); err != nil {
		t.Fatal("SetProperty failed:", err)
	}
	if !strings.Contains(block.Raw(), "  m_LocalPosition: {x: 5, y: 0, z: 0}\n") {
		t.Error("inline edit corrupted the value:", block.Raw())
	}
	if !block.Dirty() {
		t.Error("mutation did not mark the block dirty")
	}
}

// TestSetPropertyBlockStyleLeaf tests leaf edits under block-style
// compounds, and that the form is preserved.
func TestSetPropertyBlockStyleLeaf(t *testing.T) {
	block, err := NewBlock(testLightBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if err := block.SetProperty("m_Shadows.m_Type", "0"); err != nil {
		t.Fatal("SetProperty failed:", err)
	}
	if !strings.Contains(block.Raw(), "  m_Shadows:\n    m_Type: 0\n    m_Resolution: -1\n") {
		t.Error("block-style edit corrupted the compound:", block.Raw())
	}
	if block.FormatOf("m_Shadows") != FormatBlock {
		t.Error("format detection mismatch for m_Shadows")
	}
	if block.FormatOf("m_GameObject") != FormatInline {
		t.Error("format detection mismatch for m_GameObject")
	}
}

// TestSetPropertyRejectsCompoundCollapse tests that a whole block-style
// compound cannot be replaced with a scalar.
func TestSetPropertyRejectsCompoundCollapse(t *testing.T) {
	block, err := NewBlock(testLightBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	before := block.Raw()
	if err := block.SetProperty("m_Shadows", "5"); err == nil {
		t.Error("expected compound collapse to be rejected")
	}
	if block.Raw() != before {
		t.Error("failed set still mutated the block")
	}
}

// TestArrayOperations tests length, insert, and remove across the empty and
// block forms, including the collapse back to [].
func TestArrayOperations(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}

	// Empty inline form.
	if length, err := block.GetArrayLength("m_Children"); err != nil || length != 0 {
		t.Fatal("empty array length mismatch:", length, err)
	}

	// First insert converts to block form.
	if err := block.InsertArrayElement("m_Children", -1, "{fileID: 400}"); err != nil {
		t.Fatal("InsertArrayElement failed:", err)
	}
	if !strings.Contains(block.Raw(), "  m_Children:\n  - {fileID: 400}\n  m_Father:") {
		t.Error("conversion to block form mismatched:", block.Raw())
	}

	// Second insert appends.
	if err := block.InsertArrayElement("m_Children", -1, "{fileID: 500}"); err != nil {
		t.Fatal("InsertArrayElement failed:", err)
	}
	if length, _ := block.GetArrayLength("m_Children"); length != 2 {
		t.Error("length mismatch after appends:", length)
	}

	// Positional insert.
	if err := block.InsertArrayElement("m_Children", 1, "{fileID: 450}"); err != nil {
		t.Fatal("InsertArrayElement failed:", err)
	}
	if element, _ := block.GetArrayElement("m_Children", 1); element != "{fileID: 450}" {
		t.Error("positional insert landed wrong:", element)
	}

	// Remove down to empty collapses to [].
	for i := 0; i < 3; i++ {
		if err := block.RemoveArrayElement("m_Children", 0); err != nil {
			t.Fatal("RemoveArrayElement failed:", err)
		}
	}
	if !strings.Contains(block.Raw(), "  m_Children: []\n") {
		t.Error("emptied array did not collapse to []:", block.Raw())
	}
}

// TestArrayIndexedPropertyPath tests the m_X.Array.data[i] path shape.
func TestArrayIndexedPropertyPath(t *testing.T) {
	raw := "--- !u!23 &700\nMeshRenderer:\n  m_GameObject: {fileID: 300}\n  m_Materials:\n  - {fileID: 2100000, guid: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa, type: 2}\n  - {fileID: 0}\n"
	block, err := NewBlock(raw)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	value, err := block.GetProperty("m_Materials.Array.data[1]")
	if err != nil {
		t.Fatal("GetProperty failed:", err)
	}
	if value != "{fileID: 0}" {
		t.Error("array-indexed read mismatch:", value)
	}
	if err := block.SetProperty("m_Materials.Array.data[1]", "{fileID: 42}"); err != nil {
		t.Fatal("SetProperty failed:", err)
	}
	if value, _ := block.GetProperty("m_Materials.Array.data[1]"); value != "{fileID: 42}" {
		t.Error("array-indexed write mismatch:", value)
	}
}

// TestExtractFileIDRefs tests body reference extraction.
func TestExtractFileIDRefs(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	refs := block.ExtractFileIDRefs()
	if len(refs) != 1 || refs[0] != "300" {
		t.Error("reference extraction mismatch:", refs)
	}
}

// TestRemapFileID tests header and body remapping, including the null
// reference's immunity.
func TestRemapFileID(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}

	// Remap the owner reference.
	block.RemapFileID("300", "9000")
	if !strings.Contains(block.Raw(), "m_GameObject: {fileID: 9000}") {
		t.Error("body remap failed:", block.Raw())
	}

	// Remap the anchor.
	block.RemapFileID("301", "9001")
	if block.FileID() != "9001" {
		t.Error("header remap failed:", block.FileID())
	}
	if !strings.HasPrefix(block.Raw(), "--- !u!4 &9001\n") {
		t.Error("header line remap failed:", block.Raw())
	}

	// The null reference must never be touched.
	before := block.Raw()
	block.RemapFileID("0", "1234")
	if block.Raw() != before {
		t.Error("null reference was remapped")
	}
}

// TestRemapFileIDPrefixSafety tests that remapping an identifier never
// corrupts a longer identifier sharing its prefix.
func TestRemapFileIDPrefixSafety(t *testing.T) {
	raw := "--- !u!4 &1\nTransform:\n  m_GameObject: {fileID: 30}\n  m_Father: {fileID: 3000}\n"
	block, err := NewBlock(raw)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	block.RemapFileID("30", "77")
	if !strings.Contains(block.Raw(), "{fileID: 77}") {
		t.Error("target reference not remapped:", block.Raw())
	}
	if !strings.Contains(block.Raw(), "{fileID: 3000}") {
		t.Error("prefix-sharing reference corrupted:", block.Raw())
	}
}

// TestLargeFileIDSurvival tests that identifiers beyond 2^53 survive
// parsing, lookup, and remapping as exact strings.
func TestLargeFileIDSurvival(t *testing.T) {
	raw := "--- !u!4 &9007199254740993\nTransform:\n  m_GameObject: {fileID: 9007199254740995}\n"
	block, err := NewBlock(raw)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if block.FileID() != "9007199254740993" {
		t.Error("large anchor mutated:", block.FileID())
	}
	refs := block.ExtractFileIDRefs()
	if len(refs) != 1 || refs[0] != "9007199254740995" {
		t.Error("large reference mutated:", refs)
	}
}

// TestReplaceRaw tests re-parsing and dirty marking, plus rejection of
// invalid replacements.
func TestReplaceRaw(t *testing.T) {
	block, err := NewBlock(testTransformBlock)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	if err := block.ReplaceRaw("--- !u!1 &77\nGameObject:\n  m_Name: x\n"); err != nil {
		t.Fatal("ReplaceRaw failed:", err)
	}
	if block.ClassID() != 1 || block.FileID() != "77" {
		t.Error("header not re-parsed after ReplaceRaw")
	}
	if !block.Dirty() {
		t.Error("ReplaceRaw did not mark the block dirty")
	}
	if err := block.ReplaceRaw("not a block"); err == nil {
		t.Error("expected ReplaceRaw to reject an invalid header")
	}
	if block.FileID() != "77" {
		t.Error("failed ReplaceRaw corrupted block state")
	}
}

// TestComponentIDs tests m_Component list extraction.
func TestComponentIDs(t *testing.T) {
	raw := "--- !u!1 &300\nGameObject:\n  m_Component:\n  - component: {fileID: 301}\n  - component: {fileID: 302}\n  m_Name: Player\n"
	block, err := NewBlock(raw)
	if err != nil {
		t.Fatal("NewBlock failed:", err)
	}
	ids := block.ComponentIDs()
	if len(ids) != 2 || ids[0] != "301" || ids[1] != "302" {
		t.Error("component extraction mismatch:", ids)
	}
}
