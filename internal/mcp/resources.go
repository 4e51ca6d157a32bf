// ABOUTME: MCP resource implementations for the activity tracker.
// ABOUTME: Provides arista://profile, arista://exercises/recent, and arista://sleep/recent.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	profileURI         = "arista://profile"
	recentExercisesURI = "arista://exercises/recent"
	recentSleepURI     = "arista://sleep/recent"

	recentLimit = 10
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         profileURI,
		Name:        "User Profile",
		Description: "The tracked user and activity summary",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentExercisesURI,
		Name:        "Recent Exercises",
		Description: "Last 10 exercise sessions",
		MIMEType:    "application/json",
	}, s.handleRecentExercisesResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentSleepURI,
		Name:        "Recent Sleep",
		Description: "Last 10 sleep sessions",
		MIMEType:    "application/json",
	}, s.handleRecentSleepResource)
}

// Resource handlers

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum, err := s.svc.Summary()
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	result := map[string]interface{}{
		"user":    sum.User,
		"summary": toSummaryOutput(sum),
	}
	if sum.User != nil {
		result["initials"] = sum.User.Initials()
	}
	return jsonResource(profileURI, result)
}

func (s *Server) handleRecentExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	list, err := s.svc.GetExercises()
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	items := []exerciseItem{}
	for _, e := range limit(list, recentLimit) {
		items = append(items, toExerciseItem(e))
	}
	return jsonResource(recentExercisesURI, map[string]interface{}{
		"exercises": items,
		"total":     len(list),
	})
}

func (s *Server) handleRecentSleepResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	list, err := s.svc.GetSleepSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep sessions: %w", err)
	}

	items := []sleepItem{}
	for _, sl := range limit(list, recentLimit) {
		items = append(items, toSleepItem(sl))
	}
	return jsonResource(recentSleepURI, map[string]interface{}{
		"sessions": items,
		"total":    len(list),
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
