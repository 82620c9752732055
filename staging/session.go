package staging

import (
	"context"
	"io"

	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/bundle"
	"github.com/stagekit/stagefs/config"
	"github.com/stagekit/stagefs/importer"
	"github.com/stagekit/stagefs/records"
	"github.com/stagekit/stagefs/util"
)

// Session is the facade the surrounding console drives: one staging
// collection for one editing session, wired to hydration, batch import,
// and the archive packager according to config.
type Session struct {
	cfg    *config.Config
	tree   *Tree
	logger zerolog.Logger
}

// Compile-time check that Session covers the operator surface
var _ stagefs.TreeOperator = (*Session)(nil)

// NewSession creates an empty staging session with the given config; a
// nil config uses defaults. The configured log level is applied globally.
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	util.InitializeLogger(cfg.LogLvl)
	return &Session{
		cfg:    cfg,
		tree:   NewTree(),
		logger: util.GetLogger("Session"),
	}
}

// Tree exposes the underlying collection for display-tree construction
func (s *Session) Tree() *Tree {
	return s.tree
}

func (s *Session) CreateFile(name, parentID string, payload stagefs.Payload) (stagefs.NodeInfo, error) {
	return s.tree.CreateFile(name, parentID, payload)
}

func (s *Session) CreateFolder(name, parentID string) (stagefs.NodeInfo, error) {
	return s.tree.CreateFolder(name, parentID)
}

func (s *Session) Rename(id, newName string) error {
	return s.tree.Rename(id, newName)
}

func (s *Session) Move(id, newParentID string) error {
	return s.tree.Move(id, newParentID)
}

func (s *Session) Delete(id string) ([]string, error) {
	return s.tree.Delete(id)
}

func (s *Session) ToggleLock(id string) error {
	return s.tree.ToggleLock(id)
}

func (s *Session) Resolve(id string) (string, error) {
	return s.tree.Resolve(id)
}

func (s *Session) Flatten() ([]stagefs.FileRecord, error) {
	return s.tree.Flatten()
}

// Hydrate replaces the session's collection with one built from the
// given file list, e.g. an already-uploaded component's stored files
func (s *Session) Hydrate(recs []stagefs.FileRecord) error {
	tree, err := Build(recs)
	if err != nil {
		return err
	}
	s.tree = tree
	s.logger.Debug().Int("records", len(recs)).Msg("Hydrated session")
	return nil
}

// HydrateJSON hydrates from the backend's JSON file list, applying the
// configured default permissions to entries without one
func (s *Session) HydrateJSON(data []byte) error {
	recs, err := records.UnmarshalFileList(data, s.cfg.DefaultPermissions)
	if err != nil {
		return err
	}
	return s.Hydrate(recs)
}

// Import walks dir inside fsys and stages every regular file into the
// current collection, keeping whatever is already staged
func (s *Session) Import(fsys billy.Filesystem, dir string) error {
	recs, err := importer.FromFS(fsys, dir, s.cfg.MaxPayloadSize)
	if err != nil {
		return err
	}
	return s.tree.Insert(recs)
}

// Pack flattens the collection and streams the component file archive
// onto w
func (s *Session) Pack(ctx context.Context, w io.Writer) error {
	recs, err := s.tree.Flatten()
	if err != nil {
		return err
	}
	return bundle.NewPackager(s.cfg.Compress).Pack(ctx, w, recs)
}

// WriteManifest flattens the collection and writes the JSON
// path+permissions list for the file-registration endpoint
func (s *Session) WriteManifest(w io.Writer) error {
	recs, err := s.tree.Flatten()
	if err != nil {
		return err
	}
	return bundle.WriteManifest(w, recs)
}
