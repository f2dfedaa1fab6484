// pkg/ai/mock_client.go

package ai

import "context"

type mockClient struct{}

// NewMock returns a client that answers with a small canned response in the
// expected template. Used when no API key is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "**1. Title:** Window Functions Deep Dive " +
		"**Difficulty:** Medium " +
		"**Concepts:** Window Functions, Ranking " +
		"**Description:** Rank employees by salary within each department using window functions.\n" +
		"**2. Title:** Detecting Duplicate Records " +
		"**Difficulty:** Easy " +
		"**Concepts:** GROUP BY, HAVING " +
		"**Description:** Find and remove duplicate rows from a customer table.", nil
}
