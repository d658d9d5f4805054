package main

import (
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/resolve"
)

// guidScriptResolver is the CLI's script resolver: it accepts raw 32-hex
// GUIDs only. Resolving type names or .cs paths requires a project GUID
// cache, which an external tool supplies; the command line takes the GUID
// directly instead.
type guidScriptResolver struct{}

// ResolveScript implements resolve.ScriptResolver.
func (guidScriptResolver) ResolveScript(ident, projectPath string) (*resolve.Script, error) {
	if identifier.IsValidGUID(ident) {
		return &resolve.Script{GUID: ident}, nil
	}
	return nil, nil
}

// pathPrefabResolver is the CLI's prefab resolver: the user names the source
// prefab path explicitly with --source-prefab, and every GUID resolves to
// it.
type pathPrefabResolver struct {
	path string
}

// ResolvePrefabByGUID implements resolve.PrefabResolver.
func (r pathPrefabResolver) ResolvePrefabByGUID(guid, projectPath string) (string, error) {
	return r.path, nil
}
