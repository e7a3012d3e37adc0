package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/generator"
)

type fakeGenerator struct {
	mu    sync.Mutex
	calls []string
	data  []*application.ApplicationData
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, data *application.ApplicationData, outputPath string) (generator.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, outputPath)
	f.data = append(f.data, data)
	if f.err != nil {
		return generator.Result{}, f.err
	}
	return generator.Result{OutputPath: outputPath, Bytes: 1}, nil
}

type rpcReply struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *mcpError       `json:"error"`
}

func serveLines(t *testing.T, srv *Server, lines ...string) []rpcReply {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	require.NoError(t, srv.Serve(context.Background(), in, &out))

	var replies []rpcReply
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var r rpcReply
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r), "stdout must only carry JSON-RPC: %q", sc.Text())
		replies = append(replies, r)
	}
	return replies
}

func callLine(id int, args string) string {
	return `{"jsonrpc":"2.0","id":` + jsonInt(id) + `,"method":"tools/call","params":{"name":"generate_application","arguments":` + args + `}}`
}

func jsonInt(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}

func toolResult(t *testing.T, r rpcReply) ToolResult {
	t.Helper()
	require.Nil(t, r.Error)
	var res ToolResult
	require.NoError(t, json.Unmarshal(r.Result, &res))
	return res
}

func TestServe_Initialize(t *testing.T) {
	srv := NewServer(&fakeGenerator{}, zap.NewNop())
	replies := serveLines(t, srv,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","clientInfo":{"name":"test","version":"0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"initialize","params":{"protocolVersion":"1999-01-01"}}`,
	)
	require.Len(t, replies, 2, "notifications get no reply")

	var res initializeResult
	require.NoError(t, json.Unmarshal(replies[0].Result, &res))
	assert.Equal(t, "2025-03-26", res.ProtocolVersion)
	assert.Equal(t, "dream-big-application", res.ServerInfo.Name)
	assert.Equal(t, "1.0.0", res.ServerInfo.Version)
	assert.JSONEq(t, `{"tools":{}}`, string(mustMarshal(t, res.Capabilities)))

	require.NoError(t, json.Unmarshal(replies[1].Result, &res))
	assert.Equal(t, "2024-11-05", res.ProtocolVersion)
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestServe_PingAndToolsList(t *testing.T) {
	srv := NewServer(&fakeGenerator{}, nil)
	replies := serveLines(t, srv,
		`{"jsonrpc":"2.0","id":"a","method":"ping"}`,
		`{"jsonrpc":"2.0","id":"b","method":"tools/list"}`,
	)
	require.Len(t, replies, 2)
	assert.JSONEq(t, `"a"`, string(replies[0].ID))
	assert.JSONEq(t, `{}`, string(replies[0].Result))

	var list struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			InputSchema struct {
				Type       string                     `json:"type"`
				Properties map[string]json.RawMessage `json:"properties"`
				Required   []string                   `json:"required"`
			} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(replies[1].Result, &list))
	require.Len(t, list.Tools, 1)
	tool := list.Tools[0]
	assert.Equal(t, "generate_application", tool.Name)
	assert.Contains(t, tool.Description, "Generate the Dream Big application document.")
	assert.Equal(t, "object", tool.InputSchema.Type)
	assert.Contains(t, tool.InputSchema.Properties, "data")
	assert.Contains(t, tool.InputSchema.Properties, "output_path")
	assert.Equal(t, []string{"data", "output_path"}, tool.InputSchema.Required)
}

func TestServe_ProtocolErrors(t *testing.T) {
	srv := NewServer(&fakeGenerator{}, nil)
	replies := serveLines(t, srv,
		`{not json`,
		`{"jsonrpc":"2.0","id":1,"method":"resources/list"}`,
		`{"jsonrpc":"1.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","method":"unknown/notification"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"other_tool","arguments":{}}}`,
	)
	require.Len(t, replies, 4)

	assert.Equal(t, "null", string(replies[0].ID))
	require.NotNil(t, replies[0].Error)
	assert.Equal(t, codeParseError, replies[0].Error.Code)

	require.NotNil(t, replies[1].Error)
	assert.Equal(t, codeMethodNotFound, replies[1].Error.Code)

	require.NotNil(t, replies[2].Error)
	assert.Equal(t, codeInvalidRequest, replies[2].Error.Code)

	require.NotNil(t, replies[3].Error)
	assert.Equal(t, codeInvalidParams, replies[3].Error.Code)
	assert.Equal(t, "Tool not found", replies[3].Error.Message)
}

func TestServe_ToolCallArgumentErrors(t *testing.T) {
	gen := &fakeGenerator{}
	srv := NewServer(gen, nil)

	tests := []struct {
		name string
		args string
		want string
	}{
		{name: "no arguments", args: `null`, want: "data and output_path are required"},
		{name: "missing data", args: `{"output_path":"/tmp/x.docx"}`, want: "data is required"},
		{name: "null data", args: `{"data":null,"output_path":"/tmp/x.docx"}`, want: "data is required"},
		{name: "data not an object", args: `{"data":"x","output_path":"/tmp/x.docx"}`, want: "data must be an object"},
		{name: "missing output path", args: `{"data":{}}`, want: "output_path is required"},
		{name: "wrong output path type", args: `{"data":{},"output_path":5}`, want: "invalid arguments"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := serveLines(t, srv, callLine(i+1, tt.args))
			require.Len(t, replies, 1)
			require.NotNil(t, replies[0].Error)
			assert.Equal(t, codeInvalidParams, replies[0].Error.Code)
			assert.Contains(t, replies[0].Error.Message, tt.want)
		})
	}
	assert.Empty(t, gen.calls)
}

func TestServe_ToolCallSuccess(t *testing.T) {
	gen := &fakeGenerator{}
	srv := NewServer(gen, nil)

	replies := serveLines(t, srv, callLine(7, `{"data":{"projectName":"P","organization":{"fullTimeStaff":"3"}},"output_path":"/abs/out.docx"}`))
	require.Len(t, replies, 1)
	res := toolResult(t, replies[0])
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.Equal(t, "Successfully generated application document at: /abs/out.docx", res.Content[0].Text)

	require.Equal(t, []string{"/abs/out.docx"}, gen.calls)
	assert.Equal(t, application.Str("P"), gen.data[0].ProjectName)
	assert.Equal(t, "3", gen.data[0].Organization.FullTimeStaff.String())
}

func TestServe_ToolCallGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("disk full")}
	srv := NewServer(gen, nil)

	replies := serveLines(t, srv, callLine(1, `{"data":{},"output_path":"/abs/out.docx"}`))
	res := toolResult(t, replies[0])
	assert.True(t, res.IsError)
	assert.Equal(t, "Error generating document: disk full", res.Content[0].Text)
}

func TestServe_ToolCallUndecodableData(t *testing.T) {
	gen := &fakeGenerator{}
	srv := NewServer(gen, nil)

	replies := serveLines(t, srv, callLine(1, `{"data":{"budget":[{"amount":{}}]},"output_path":"/abs/out.docx"}`))
	res := toolResult(t, replies[0])
	assert.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(res.Content[0].Text, "Error generating document: parsing application data"))
	assert.Empty(t, gen.calls)
}

func TestServe_SequentialOrder(t *testing.T) {
	gen := &fakeGenerator{}
	srv := NewServer(gen, nil)

	var lines []string
	for i := 1; i <= 5; i++ {
		lines = append(lines, callLine(i, `{"data":{},"output_path":"/out/`+jsonInt(i)+`.docx"}`))
	}
	replies := serveLines(t, srv, lines...)
	require.Len(t, replies, 5)
	for i, r := range replies {
		assert.Equal(t, jsonInt(i+1), string(r.ID))
	}
	assert.Equal(t, []string{"/out/1.docx", "/out/2.docx", "/out/3.docx", "/out/4.docx", "/out/5.docx"}, gen.calls)
}

func TestServe_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	srv := NewServer(generator.New(), nil)

	good := filepath.Join(dir, "app.docx")
	bad := filepath.Join(dir, "missing", "app.docx")
	replies := serveLines(t, srv,
		callLine(1, `{"data":{"projectName":"偏鄉共學","budget":[{"amount":100},{"amount":250},{}]},"output_path":`+quote(good)+`}`),
		callLine(2, `{"data":{},"output_path":`+quote(bad)+`}`),
	)
	require.Len(t, replies, 2)

	ok := toolResult(t, replies[0])
	assert.False(t, ok.IsError)
	assert.Equal(t, "Successfully generated application document at: "+good, ok.Content[0].Text)
	info, err := os.Stat(good)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	failed := toolResult(t, replies[1])
	assert.True(t, failed.IsError)
	assert.True(t, strings.HasPrefix(failed.Content[0].Text, "Error generating document: "))
	assert.NoFileExists(t, bad)
}

func TestServe_EndToEndScalarLeaves(t *testing.T) {
	dir := t.TempDir()
	srv := NewServer(generator.New(), nil)

	inputs := []string{
		`{"organization":{"registrationNumber":12345}}`,
		`{"organization":{"contactPhone":26605063}}`,
		`{"attendees":{"kickoff":[{"phone":912345678}]}}`,
		`{"budget":[{"name":"講師費","note":2}]}`,
		`{"organization":{"serviceTargets":{"children":{"count":3,"types":[1,2]}}}}`,
		`{"sdgs":["1","3"]}`,
	}
	var lines []string
	for i, data := range inputs {
		out := filepath.Join(dir, "app"+jsonInt(i)+".docx")
		lines = append(lines, callLine(i+1, `{"data":`+data+`,"output_path":`+quote(out)+`}`))
	}

	replies := serveLines(t, srv, lines...)
	require.Len(t, replies, len(inputs))
	for i, r := range replies {
		res := toolResult(t, r)
		assert.False(t, res.IsError, "input %s: %s", inputs[i], res.Content[0].Text)
		assert.FileExists(t, filepath.Join(dir, "app"+jsonInt(i)+".docx"))
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestServe_StopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- NewServer(&fakeGenerator{}, nil).Serve(ctx, pr, &out)
	}()

	_, err := pw.Write([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"))
	require.NoError(t, err)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServe_WriteFailure(t *testing.T) {
	srv := NewServer(&fakeGenerator{}, nil)
	err := srv.Serve(context.Background(), strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing response")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }
