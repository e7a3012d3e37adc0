package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dreambig/appgen/internal/application"
)

// ToolGenerateApplication is the only tool the server exposes.
const ToolGenerateApplication = "generate_application"

const generateApplicationDescription = "生成 Dream Big 元大公益圓夢計畫申請書 (Word/Docx)。Generate the Dream Big application document."

var generateApplicationSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "description": "申請書資料物件 (JSON)。結構請參考 references/fields-guide.md。"
    },
    "output_path": {
      "type": "string",
      "description": "生成檔案的絕對路徑 (Absolute path for the output .docx file)."
    }
  },
  "required": ["data", "output_path"]
}`)

// Tools returns the tool list served by tools/list.
func Tools() []ToolSchema {
	return []ToolSchema{{
		Name:        ToolGenerateApplication,
		Description: generateApplicationDescription,
		InputSchema: generateApplicationSchema,
	}}
}

type generateArgs struct {
	Data       json.RawMessage `json:"data"`
	OutputPath *string         `json:"output_path"`
}

func parseGenerateArgs(raw json.RawMessage) (json.RawMessage, string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, "", fmt.Errorf("%w: data and output_path are required", ErrInvalidArguments)
	}
	var args generateArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	data := bytes.TrimSpace(args.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, "", fmt.Errorf("%w: data is required", ErrInvalidArguments)
	}
	if data[0] != '{' {
		return nil, "", fmt.Errorf("%w: data must be an object", ErrInvalidArguments)
	}
	if args.OutputPath == nil || *args.OutputPath == "" {
		return nil, "", fmt.Errorf("%w: output_path is required", ErrInvalidArguments)
	}
	return data, *args.OutputPath, nil
}

func (s *Server) callTool(ctx context.Context, params json.RawMessage) (*ToolResult, *mcpError) {
	var p callToolParams
	if len(params) == 0 {
		return nil, &mcpError{Code: codeInvalidParams, Message: "missing params"}
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &mcpError{Code: codeInvalidParams, Message: err.Error()}
	}
	if p.Name != ToolGenerateApplication {
		return nil, &mcpError{Code: codeInvalidParams, Message: ErrToolNotFound.Error(), Data: map[string]string{"tool": p.Name}}
	}

	rawData, outputPath, err := parseGenerateArgs(p.Arguments)
	if err != nil {
		return nil, &mcpError{Code: codeInvalidParams, Message: err.Error()}
	}

	callID := uuid.NewString()
	log := s.logger.With(zap.String("call_id", callID), zap.String("tool", p.Name))
	log.Info("generating application", zap.String("output_path", outputPath))

	data, err := application.DecodeJSON(rawData)
	if err == nil {
		_, err = s.gen.Generate(ctx, data, outputPath)
	}
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return textResult("Error generating document: "+err.Error(), true), nil
	}
	return textResult("Successfully generated application document at: "+outputPath, false), nil
}
