package config

import "github.com/sgaunet/git-weblink/pkg/weburl"

// FileSource serves the host mapping of a configuration file. The file is
// read again on every call so edits apply to the next action.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path. An empty path follows
// [FindConfigFile] on each call.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// HostMapping loads the file and returns its merged mapping.
func (s *FileSource) HostMapping() (weburl.HostMapping, error) {
	cfg, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	return cfg.Mapping(), nil
}
