// Package mcp exposes the simulation engine as an MCP server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/internal/presentation/graph"
	"github.com/aretw0/cinta/pkg/machine"
)

// MachineSummary aligns with the HTTP schema and provides a unified
// structure across adapters.
type MachineSummary struct {
	Name         string           `json:"name" jsonschema_description:"Machine name"`
	Kind         machine.Kind     `json:"kind" jsonschema_description:"recognizer or transformer"`
	Fingerprint  string           `json:"fingerprint" jsonschema_description:"Canonical digest of the transition table"`
	Initial      machine.State    `json:"initial"`
	Final        machine.State    `json:"final"`
	States       []machine.State  `json:"states"`
	Alphabet     []machine.Symbol `json:"alphabet"`
	TapeAlphabet []machine.Symbol `json:"tape_alphabet"`
	Rules        int              `json:"rules"`
	MaxSteps     int              `json:"max_steps"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Run(ctx context.Context, input string) (machine.RunResult, error)
	Table() *machine.Table
	MaxSteps() int
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("cinta-mcp", strings.TrimSpace(cinta.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: run_input
	runTool := mcp.NewTool("run_input",
		mcp.WithDescription("Run one input word through the machine and return the verdict, step count and final tape."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The word to simulate. May be empty for the empty word.")),
		mcp.WithOutputSchema[machine.RunResult](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunInput))

	// TOOL: machine_summary
	summaryTool := mcp.NewTool("machine_summary",
		mcp.WithDescription("Describe the loaded machine: states, alphabets, rule count and step bound."),
		mcp.WithOutputSchema[MachineSummary](),
	)
	s.mcpServer.AddTool(summaryTool, mcp.NewStructuredToolHandler(s.handleMachineSummary))

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the transition diagram of the machine."),
		mcp.WithString("format", mcp.Description("Diagram dialect: mermaid (default) or dot")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format, _ := request.GetArguments()["format"].(string)
		diagram, err := graph.Generate(s.engine.Table(), graph.Format(format))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("graph failed: %v", err)), nil
		}
		return mcp.NewToolResultText(diagram), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleRunInput(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (machine.RunResult, error) {
	input, _ := args["input"].(string)

	result, err := s.engine.Run(ctx, input)
	if err != nil {
		return machine.RunResult{}, fmt.Errorf("run failed: %w", err)
	}
	return result, nil
}

func (s *Server) handleMachineSummary(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MachineSummary, error) {
	return s.summary(), nil
}

func (s *Server) summary() MachineSummary {
	table := s.engine.Table()
	return MachineSummary{
		Name:         table.Name(),
		Kind:         table.Kind(),
		Fingerprint:  table.Fingerprint(),
		Initial:      table.Initial(),
		Final:        table.Final(),
		States:       table.States(),
		Alphabet:     table.Alphabet(),
		TapeAlphabet: table.TapeAlphabet(),
		Rules:        table.Len(),
		MaxSteps:     s.engine.MaxSteps(),
	}
}

func (s *Server) registerResources() {
	// EXPOSE: cinta://machine
	s.mcpServer.AddResource(mcp.NewResource("cinta://machine", "Loaded Machine Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.summary())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal machine summary: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "cinta://machine",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	// EXPOSE: cinta://graph
	s.mcpServer.AddResource(mcp.NewResource("cinta://graph", "Transition Diagram",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "cinta://graph",
				MIMEType: "text/plain",
				Text:     graph.GenerateMermaid(s.engine.Table(), nil),
			},
		}, nil
	})
}
