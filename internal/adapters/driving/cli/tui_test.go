package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

// MockTUIStylistService implements driving.StylistService for TUI tests.
type MockTUIStylistService struct{}

func (m *MockTUIStylistService) SubmitUtterance(utterance string) error { return nil }

func (m *MockTUIStylistService) Messages() []domain.Message { return nil }

func (m *MockTUIStylistService) ThinkingSteps() []domain.ThinkingStep { return nil }

func (m *MockTUIStylistService) FilterResponses() []string { return nil }

func (m *MockTUIStylistService) ActivePrompt() *domain.FilterPrompt { return nil }

func (m *MockTUIStylistService) Turning() bool { return false }

func (m *MockTUIStylistService) Intent() domain.StyleIntent { return domain.IntentDefault }

func (m *MockTUIStylistService) Subscribe() <-chan struct{} { return nil }

func TestTUICmd_Exists(t *testing.T) {
	// Verify the tui command is registered
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive styling session", tuiCmd.Short)
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "interactive terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestSetTUIConfig(t *testing.T) {
	config := &TUIConfig{
		StylistService: &MockTUIStylistService{},
		Mode:           domain.ModeFull,
	}

	SetTUIConfig(config)

	assert.Equal(t, config, tuiConfig)

	// Cleanup
	tuiConfig = nil
}

func TestTUICmd_HelpOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"tui", "--help"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "interactive terminal user interface")
	assert.Contains(t, output, "Controls:")
}

func TestTUIConfig_Fields(t *testing.T) {
	ch := make(chan struct{})
	themes := make(chan string)
	config := &TUIConfig{
		StylistService: &MockTUIStylistService{},
		Mode:           domain.ModeCatalog,
		Changed:        ch,
		Theme:          "linen",
		ThemeChanges:   themes,
	}

	assert.NotNil(t, config.StylistService)
	assert.Equal(t, domain.ModeCatalog, config.Mode)
	assert.NotNil(t, config.Changed)
	assert.Equal(t, "linen", config.Theme)
	assert.NotNil(t, config.ThemeChanges)
}
