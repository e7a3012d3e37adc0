// Package mcp serves the application generator as a Model Context Protocol
// tool over newline-delimited JSON-RPC 2.0.
package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/generator"
)

// DefaultServerInfo is reported in the initialize handshake.
var DefaultServerInfo = ServerInfo{Name: "dream-big-application", Version: "1.0.0"}

// Generator produces an application document at a path.
type Generator interface {
	Generate(ctx context.Context, data *application.ApplicationData, outputPath string) (generator.Result, error)
}

// Server answers MCP requests one at a time.
type Server struct {
	gen    Generator
	logger *zap.Logger
	info   ServerInfo
}

// NewServer returns a Server backed by gen. A nil logger discards logs.
func NewServer(gen Generator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{gen: gen, logger: logger, info: DefaultServerInfo}
}

// Serve reads requests from r and writes responses to w until r is
// exhausted or ctx is cancelled. Only protocol messages are written to w.
// Requests are handled sequentially in arrival order.
//
// If r implements io.Closer it is closed when ctx is cancelled so a blocked
// read returns.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	g, gctx := errgroup.WithContext(ctx)
	lines := make(chan []byte)

	if c, ok := r.(io.Closer); ok {
		stop := context.AfterFunc(gctx, func() { _ = c.Close() })
		defer stop()
	}

	g.Go(func() error {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadBytes('\n')
			if len(bytes.TrimSpace(line)) > 0 {
				select {
				case lines <- line:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading request: %w", err)
			}
		}
	})

	g.Go(func() error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				resp := s.handle(gctx, line)
				if resp == nil {
					continue
				}
				if err := enc.Encode(resp); err != nil {
					return fmt.Errorf("writing response: %w", err)
				}
			}
		}
	})

	s.logger.Info("mcp server running on stdio", zap.String("server", s.info.Name), zap.String("version", s.info.Version))
	err := g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// handle processes one raw JSON-RPC message and returns the response,
// or nil for notifications.
func (s *Server) handle(ctx context.Context, line []byte) *mcpResponse {
	var req mcpRequest
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("malformed request", zap.Error(err))
		return errorResponse(nil, &mcpError{Code: codeParseError, Message: "Parse error"})
	}
	if req.JSONRPC != jsonrpcVersion || req.Method == "" {
		if req.isNotification() {
			return nil
		}
		return errorResponse(req.ID, &mcpError{Code: codeInvalidRequest, Message: "Invalid Request"})
	}

	log := s.logger.With(zap.String("method", req.Method))
	if !req.isNotification() {
		log = log.With(zap.ByteString("id", req.ID))
	}
	log.Debug("request received")

	result, rpcErr := s.dispatch(ctx, &req)
	if req.isNotification() {
		return nil
	}
	if rpcErr != nil {
		log.Debug("request failed", zap.Int("code", rpcErr.Code), zap.String("message", rpcErr.Message))
		return errorResponse(req.ID, rpcErr)
	}
	return &mcpResponse{JSONRPC: jsonrpcVersion, ID: req.ID, Result: result}
}

func (s *Server) dispatch(ctx context.Context, req *mcpRequest) (any, *mcpError) {
	switch req.Method {
	case "initialize":
		return s.initialize(req.Params), nil
	case "ping":
		return struct{}{}, nil
	case "tools/list":
		return listToolsResult{Tools: Tools()}, nil
	case "tools/call":
		return s.callTool(ctx, req.Params)
	}
	if req.isNotification() {
		return nil, nil
	}
	return nil, &mcpError{Code: codeMethodNotFound, Message: "Method not found", Data: map[string]string{"method": req.Method}}
}

func (s *Server) initialize(params json.RawMessage) initializeResult {
	version := supportedProtocolVersions[0]
	var p initializeParams
	if len(params) > 0 && json.Unmarshal(params, &p) == nil && slices.Contains(supportedProtocolVersions, p.ProtocolVersion) {
		version = p.ProtocolVersion
	}
	if p.ClientInfo.Name != "" {
		s.logger.Info("client connected", zap.String("client", p.ClientInfo.Name), zap.String("client_version", p.ClientInfo.Version))
	}
	return initializeResult{
		ProtocolVersion: version,
		ServerInfo:      s.info,
	}
}

func errorResponse(id json.RawMessage, e *mcpError) *mcpResponse {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	return &mcpResponse{JSONRPC: jsonrpcVersion, ID: id, Error: e}
}
