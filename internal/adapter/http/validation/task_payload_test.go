package validation

import (
	"testing"

	"taskapp/internal/adapter/http/dto"

	"github.com/stretchr/testify/require"
)

func strptr(value string) *string {
	return &value
}

func TestBuildCreateTaskInput_TrimsTitle(t *testing.T) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "  Fix bug  "})
	require.NoError(t, err)
	require.Equal(t, "Fix bug", input.Title)
	require.Nil(t, input.Status)
	require.Nil(t, input.Type)
	require.Nil(t, input.Priority)
}

func TestBuildCreateTaskInput_RejectsBlankTitle(t *testing.T) {
	_, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "   "})
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_RejectsBlankOptionalFields(t *testing.T) {
	for _, req := range []dto.CreateTaskRequest{
		{Title: "ok", Status: strptr(" ")},
		{Title: "ok", Type: strptr("")},
		{Title: "ok", Priority: strptr(" ")},
	} {
		_, err := BuildCreateTaskInput(req)
		require.ErrorIs(t, err, ErrInvalidTaskPayload)
	}
}

func TestBuildUpdateTaskInput_KeepsOmittedStatusNil(t *testing.T) {
	input, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{Title: "Fix bug v2"})
	require.NoError(t, err)
	require.Equal(t, "Fix bug v2", input.Title)
	require.Nil(t, input.Status)
	require.Nil(t, input.Description)
}

func TestBuildUpdateTaskInput_RejectsBlankTitle(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{Title: " "})
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}
