package pipeline

import (
	"context"

	"github.com/matzehuels/figscope/pkg/core/node"
	ferrors "github.com/matzehuels/figscope/pkg/errors"
	"github.com/matzehuels/figscope/pkg/integrations/figma"
	"github.com/matzehuels/figscope/pkg/io"
)

// FileSource serves a GET /files/:key response saved by the download
// command, so views can be rebuilt without network access.
//
// The saved file is returned whole regardless of the requested depth or
// ids; the structure view prunes it locally. Nodes are looked up in the
// saved document. Variables and comments are not part of a file response
// and report NOT_FOUND.
type FileSource struct {
	raw node.Node
}

// NewFileSource wraps a decoded file response.
func NewFileSource(raw node.Node) *FileSource {
	return &FileSource{raw: raw}
}

// OpenFileSource reads a saved file response from path.
func OpenFileSource(path string) (*FileSource, error) {
	raw, err := io.ImportJSON(path)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read saved file")
	}
	return NewFileSource(raw), nil
}

// File returns the saved file.
func (s *FileSource) File(ctx context.Context, _ string, _ figma.FileQuery, _ bool) (*figma.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return figma.FileFrom(s.raw), nil
}

// Nodes returns the saved nodes whose id is in ids. Unknown ids are
// skipped, as the API does for ids it cannot resolve.
func (s *FileSource) Nodes(ctx context.Context, _ string, ids []string, _ bool) (map[string]node.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := make(map[string]node.Node)
	doc, _ := s.raw.Map("document")
	doc.Walk(func(n node.Node, _ int) bool {
		if id := n.ID(); want[id] {
			if _, seen := out[id]; !seen {
				out[id] = n
			}
		}
		return true
	})
	return out, nil
}

// Variables is not available offline.
func (s *FileSource) Variables(context.Context, string, bool) (*figma.Variables, error) {
	return nil, ferrors.New(ferrors.ErrCodeNotFound, "variables are not part of a saved file")
}

// Comments is not available offline.
func (s *FileSource) Comments(context.Context, string, bool) ([]node.Node, error) {
	return nil, ferrors.New(ferrors.ErrCodeNotFound, "comments are not part of a saved file")
}
