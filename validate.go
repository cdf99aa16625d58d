package mdpress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mdpress/mdpress/internal/fileutil"
)

// markdownExtensions lists the recognized input file extensions.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// validateRequest checks the conversion paths before any work happens.
// A non-markdown extension is only worth a warning; bad paths are fatal.
func (s *Service) validateRequest(req Request) error {
	if !fileutil.FileExists(req.InputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
	}

	outDir := filepath.Dir(req.OutputPath)
	if !fileutil.DirExists(outDir) {
		return fmt.Errorf("%w: %s", ErrOutputDirNotFound, outDir)
	}

	if !markdownExtensions[strings.ToLower(filepath.Ext(req.InputPath))] {
		s.log.Warn("input file does not have a standard markdown extension", "path", req.InputPath)
	}

	return nil
}
