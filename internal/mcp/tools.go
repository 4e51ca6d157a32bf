// ABOUTME: MCP tool implementations for users, exercises, and sleep sessions.
// ABOUTME: Validates input with the model rules before calling the facade.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_user",
		Description: "Get the tracked user's profile",
	}, s.handleGetUser)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_user",
		Description: "Create the tracked user (only one user is allowed)",
	}, s.handleCreateUser)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Record an exercise session (Football, Swimming, Running, Walking, Cycling, Other)",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercise sessions, most recent first",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise session by ID",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_sleep",
		Description: "Record a sleep session",
	}, s.handleAddSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sleep",
		Description: "List sleep sessions, most recent first",
	}, s.handleListSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_sleep",
		Description: "Delete a sleep session by ID",
	}, s.handleDeleteSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "summary",
		Description: "Overview of exercise totals and sleep quality",
	}, s.handleSummary)
}

// Tool input/output types

type emptyInput struct{}

type userOutput struct {
	Found     bool   `json:"found"`
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Message   string `json:"message"`
}

type createUserInput struct {
	FirstName string `json:"first_name" jsonschema:"The user's first name"`
	LastName  string `json:"last_name" jsonschema:"The user's last name"`
}

type addExerciseInput struct {
	Category  string `json:"category" jsonschema:"Exercise category: Football, Swimming, Running, Walking, Cycling, or Other"`
	Duration  int    `json:"duration" jsonschema:"Duration in minutes (0-120)"`
	Intensity int    `json:"intensity" jsonschema:"Intensity from 0 to 10"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Start time (ISO 8601), defaults to now"`
}

type exerciseItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
	Duration  int    `json:"duration"`
	Intensity int    `json:"intensity"`
}

type exerciseOutput struct {
	Exercise exerciseItem `json:"exercise"`
	Message  string       `json:"message"`
}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listExercisesOutput struct {
	Exercises []exerciseItem `json:"exercises"`
	Total     int            `json:"total"`
}

type deleteInput struct {
	ID string `json:"id" jsonschema:"Exact record ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addSleepInput struct {
	Duration  int    `json:"duration" jsonschema:"Duration in minutes (0-1499)"`
	Quality   int    `json:"quality" jsonschema:"Quality from 0 to 10"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Bedtime (ISO 8601), defaults to now"`
}

type sleepItem struct {
	ID           string `json:"id"`
	StartDate    string `json:"start_date"`
	Duration     int    `json:"duration"`
	DurationText string `json:"duration_text"`
	Quality      int    `json:"quality"`
}

type sleepOutput struct {
	Sleep   sleepItem `json:"sleep"`
	Message string    `json:"message"`
}

type listSleepOutput struct {
	Sessions []sleepItem `json:"sessions"`
	Total    int         `json:"total"`
}

type summaryOutput struct {
	User                 string  `json:"user,omitempty"`
	ExerciseCount        int     `json:"exercise_count"`
	TotalExerciseMinutes int     `json:"total_exercise_minutes"`
	SleepCount           int     `json:"sleep_count"`
	TotalSleep           string  `json:"total_sleep"`
	AverageSleepQuality  float64 `json:"average_sleep_quality"`
	LatestExercise       string  `json:"latest_exercise,omitempty"`
	LatestSleep          string  `json:"latest_sleep,omitempty"`
}

// Tool handlers

func (s *Server) handleGetUser(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, userOutput, error) {
	user, err := s.svc.GetUser()
	if err != nil {
		return nil, userOutput{}, err
	}
	if user == nil {
		return nil, userOutput{Message: "No user found. Use create_user first."}, nil
	}
	return nil, userOutput{
		Found:     true,
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Message:   user.FullName(),
	}, nil
}

func (s *Server) handleCreateUser(ctx context.Context, req *mcp.CallToolRequest, input createUserInput) (*mcp.CallToolResult, userOutput, error) {
	if err := models.ValidateUser(input.FirstName, input.LastName); err != nil {
		return nil, userOutput{}, err
	}

	user := models.NewUser(input.FirstName, input.LastName)
	if err := s.svc.CreateUser(user.FirstName, user.LastName, user.ID); err != nil {
		return nil, userOutput{}, err
	}

	return nil, userOutput{
		Found:     true,
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Message:   fmt.Sprintf("Created user %s", user.FullName()),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	category, ok := models.ParseCategory(input.Category)
	if !ok {
		return nil, exerciseOutput{}, apperr.InvalidInput("category")
	}

	e := models.NewExercise(category).
		WithDuration(input.Duration).
		WithIntensity(input.Intensity)
	if input.StartDate != "" {
		t, err := parseTime(input.StartDate)
		if err != nil {
			return nil, exerciseOutput{}, apperr.InvalidInput("start date")
		}
		e = e.WithStartDate(t)
	}

	if err := e.Validate(); err != nil {
		return nil, exerciseOutput{}, err
	}
	if err := s.svc.AddExercise(e); err != nil {
		return nil, exerciseOutput{}, err
	}

	return nil, exerciseOutput{
		Exercise: toExerciseItem(e),
		Message:  fmt.Sprintf("Added %s for %d min (ID: %s)", e.Category, e.Duration, e.ID[:8]),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listExercisesOutput, error) {
	list, err := s.svc.GetExercises()
	if err != nil {
		return nil, listExercisesOutput{}, err
	}

	out := listExercisesOutput{Exercises: []exerciseItem{}, Total: len(list)}
	for _, e := range limit(list, input.Limit) {
		out.Exercises = append(out.Exercises, toExerciseItem(e))
	}
	return nil, out, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.DeleteExercise(input.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted exercise: %s", input.ID)}, nil
}

func (s *Server) handleAddSleep(ctx context.Context, req *mcp.CallToolRequest, input addSleepInput) (*mcp.CallToolResult, sleepOutput, error) {
	sl := models.NewSleep().
		WithDuration(input.Duration).
		WithQuality(input.Quality)
	if input.StartDate != "" {
		t, err := parseTime(input.StartDate)
		if err != nil {
			return nil, sleepOutput{}, apperr.InvalidInput("start date")
		}
		sl = sl.WithStartDate(t)
	}

	if err := sl.Validate(); err != nil {
		return nil, sleepOutput{}, err
	}
	if err := s.svc.AddSleep(sl); err != nil {
		return nil, sleepOutput{}, err
	}

	return nil, sleepOutput{
		Sleep:   toSleepItem(sl),
		Message: fmt.Sprintf("Added %s of sleep (ID: %s)", models.FormatDuration(sl.Duration), sl.ID[:8]),
	}, nil
}

func (s *Server) handleListSleep(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listSleepOutput, error) {
	list, err := s.svc.GetSleepSessions()
	if err != nil {
		return nil, listSleepOutput{}, err
	}

	out := listSleepOutput{Sessions: []sleepItem{}, Total: len(list)}
	for _, sl := range limit(list, input.Limit) {
		out.Sessions = append(out.Sessions, toSleepItem(sl))
	}
	return nil, out, nil
}

func (s *Server) handleDeleteSleep(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.DeleteSleep(input.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted sleep session: %s", input.ID)}, nil
}

func (s *Server) handleSummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, summaryOutput, error) {
	sum, err := s.svc.Summary()
	if err != nil {
		return nil, summaryOutput{}, err
	}
	return nil, toSummaryOutput(sum), nil
}

// Helpers

func toExerciseItem(e models.ExerciseData) exerciseItem {
	return exerciseItem{
		ID:        e.ID,
		Category:  string(e.Category),
		StartDate: e.StartDate.Format(time.RFC3339),
		Duration:  e.Duration,
		Intensity: e.Intensity,
	}
}

func toSleepItem(s models.SleepData) sleepItem {
	return sleepItem{
		ID:           s.ID,
		StartDate:    s.StartDate.Format(time.RFC3339),
		Duration:     s.Duration,
		DurationText: models.FormatDuration(s.Duration),
		Quality:      s.Quality,
	}
}

func toSummaryOutput(sum *service.Summary) summaryOutput {
	out := summaryOutput{
		ExerciseCount:        sum.ExerciseCount,
		TotalExerciseMinutes: sum.TotalExerciseMinutes,
		SleepCount:           sum.SleepCount,
		TotalSleep:           models.FormatDuration(sum.TotalSleepMinutes),
		AverageSleepQuality:  sum.AverageSleepQuality,
	}
	if sum.User != nil {
		out.User = sum.User.FullName()
	}
	if e := sum.LatestExercise; e != nil {
		out.LatestExercise = fmt.Sprintf("%s on %s", e.Category, e.StartDate.Format("2006-01-02"))
	}
	if sl := sum.LatestSleep; sl != nil {
		out.LatestSleep = fmt.Sprintf("%s on %s", models.FormatDuration(sl.Duration), sl.StartDate.Format("2006-01-02"))
	}
	return out
}

// parseTime accepts RFC3339 or "2006-01-02 15:04" in local time.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}

func limit[T any](items []T, n int) []T {
	if n <= 0 {
		n = defaultListLimit
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
