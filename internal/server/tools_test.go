package server

import (
	"context"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"segment_map",
		"sample_map_color",
		"view_stage",
		"shapes_to_mask",
		"compare_masks",
		"overlay_shapes",
		"fetch_map_layers",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema missing properties")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("InputSchema missing required fields")
			}
			// every required field must be declared
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required field %s not in properties", name)
				}
			}
		})
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := New(nil, nil)
	if _, err := s.executeTool(context.Background(), "image_ocr_full", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown tool")
	}
}
