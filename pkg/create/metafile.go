package create

import (
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/meta"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// MetaResult is the result of CreateMeta.
type MetaResult struct {
	// MetaPath is the created meta file.
	MetaPath string
	// GUID is the freshly assigned asset GUID.
	GUID string
}

// CreateMeta creates a MonoImporter meta file for the specified script path
// with a fresh GUID. An existing meta file is never overwritten.
func CreateMeta(scriptPath string, logger *logging.Logger) (*MetaResult, error) {
	if err := validate.FilePath(scriptPath, validate.FilePathWrite); err != nil {
		return nil, err
	}
	guid := identifier.NewGUID()
	metaPath, err := meta.Write(scriptPath, meta.ImporterMono, guid, false)
	if err != nil {
		return nil, err
	}
	logger.Debugf("created meta %s (guid %s)", metaPath, guid)
	return &MetaResult{MetaPath: metaPath, GUID: guid}, nil
}
