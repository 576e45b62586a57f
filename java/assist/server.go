package assist

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/javamate/java/analyzer"
	"github.com/dhamidi/javamate/java/gen"
	"github.com/dhamidi/javamate/java/outline"
	"github.com/dhamidi/javamate/project"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "javamate"

var log = commonlog.GetLogger("javamate.assist")

// Server is the LSP front end. It never writes files itself: every
// generation result travels back to the client as a workspace edit,
// and a replacement only happens when the user applies the action.
type Server struct {
	store   *Store
	config  *project.Config
	rootDir string
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	ls := &Server{
		store:   NewStore(),
		config:  project.Default(),
		rootDir: ".",
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCodeAction: ls.textDocumentCodeAction,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	cfg, err := project.LoadFrom(rootDir)
	if err != nil {
		log.Warningf("load config in %s: %v", rootDir, err)
		cfg = project.Default()
	}
	ls.config = cfg
	ls.rootDir = rootDir

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CodeActionProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.store.Update(path, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.store.Update(path, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.store.Remove(path)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.store.Update(path, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	text, ok := ls.store.Get(path)
	if !ok {
		return nil, nil
	}

	index := newLineIndex(text)
	offset := index.Offset(int(params.Range.Start.Line), int(params.Range.Start.Character))

	report := ls.reflect(text, offset)
	actions, err := planActions(text, offset, ls.config, report)
	if err != nil {
		log.Warningf("outline %s: %v", path, err)
		return nil, nil
	}

	kind := protocol.CodeActionKindRefactorRewrite
	var result []protocol.CodeAction
	for _, a := range actions {
		edit := toWorkspaceEdit(params.TextDocument.URI, index, a.Edit)
		result = append(result, protocol.CodeAction{
			Title: a.Title,
			Kind:  &kind,
			Edit:  edit,
		})
	}
	return result, nil
}

// reflect resolves the accessible fields of the class under the
// cursor, through the ClassAnalyzer helper or straight from compiled
// class files. Both need a built project; when resolution fails the
// generation actions degrade to skeletons without fields.
func (ls *Server) reflect(text string, offset int) *analyzer.Report {
	file, err := outline.Parse(text)
	if err != nil {
		return nil
	}
	class := file.ClassAt(offset)
	if class == nil {
		return nil
	}

	className := class.Name
	if pkg := packageName(text); pkg != "" {
		className = pkg + "." + className
	}

	source := analyzer.SourceFor(ls.config, ls.rootDir)
	report, err := source.AccessibleFields(context.Background(), className, analyzer.AccessorNone)
	if err != nil {
		log.Infof("reflect %s: %v", className, err)
		return nil
	}
	return report
}

// toWorkspaceEdit converts a planned edit to a protocol edit. An
// insertion becomes a zero-width range at the insertion index; a
// replacement covers the inclusive span plus one, since protocol
// ranges exclude their end.
func toWorkspaceEdit(uri protocol.DocumentUri, index *lineIndex, edit gen.Edit) *protocol.WorkspaceEdit {
	var startOffset, endOffset int
	if edit.Replace {
		startOffset, endOffset = edit.Span.Start, edit.Span.End+1
	} else {
		startOffset, endOffset = edit.At, edit.At
	}

	startLine, startChar := index.Position(startOffset)
	endLine, endChar := index.Position(endOffset)

	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{
			uri: {{
				Range: protocol.Range{
					Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startChar)},
					End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
				},
				NewText: edit.Text,
			}},
		},
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
