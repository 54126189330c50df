package llmHandlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	resp  *llms.ContentResponse
	err   error
	calls int
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	return f.resp, f.err
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func completion(text string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}
}

func TestGenerate_HappyPath(t *testing.T) {
	c := &OllamaClient{llm: &fakeModel{resp: completion("Here is the answer.")}, model: "gemma3:4b"}

	out, err := c.Generate(context.Background(), "battery life?")
	require.NoError(t, err)
	require.Equal(t, "Here is the answer.", out)
	require.Equal(t, "gemma3:4b", c.Model())
}

func TestGenerate_TransportErrorIsUnreachable(t *testing.T) {
	c := &OllamaClient{llm: &fakeModel{err: errors.New("connection refused")}, model: "gemma3:4b"}

	_, err := c.Generate(context.Background(), "price?")
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindUnreachable, kind)
}

func TestGenerate_NoChoicesIsEmptyResponse(t *testing.T) {
	c := &OllamaClient{llm: &fakeModel{resp: &llms.ContentResponse{}}, model: "gemma3:4b"}

	_, err := c.Generate(context.Background(), "price?")
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindEmptyResponse, kind)
}

func TestGenerate_BlankCompletionIsEmptyResponse(t *testing.T) {
	c := &OllamaClient{llm: &fakeModel{resp: completion("   ")}, model: "gemma3:4b"}

	_, err := c.Generate(context.Background(), "price?")
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindEmptyResponse, kind)
}

func TestGenerate_RejectsEmptyPrompt(t *testing.T) {
	fake := &fakeModel{resp: completion("unused")}
	c := &OllamaClient{llm: fake, model: "gemma3:4b"}

	_, err := c.Generate(context.Background(), "   ")
	require.Error(t, err)
	require.Zero(t, fake.calls)

	_, ok := KindOf(err)
	require.False(t, ok)
}

func TestKindOf_NonGatewayError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	require.False(t, ok)
}
