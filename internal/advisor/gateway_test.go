package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"agroadvisor/internal/llm"
)

func TestGateway_UnwrapsFencedJSON(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: "```json\n{\"diagnosis\":{\"disease\":\"Leaf Blight\"}}\n```"},
	}}
	gw := NewGateway(fake, nil)

	out, err := gw.Invoke(context.Background(), "instruction")
	require.NoError(t, err)
	diag, ok := out.Data["diagnosis"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Leaf Blight", diag["disease"])
}

func TestGateway_TransportFailureIsTyped(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Err: errors.New("connection reset")},
	}}
	gw := NewGateway(fake, nil)

	_, err := gw.Invoke(context.Background(), "instruction")
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, "fake", transport.Provider)
}

func TestGateway_RepairsDefectiveJSON(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: `{ disease: 'Rust', confidence: 92, }`},
	}}
	gw := NewGateway(fake, nil)

	out, err := gw.Invoke(context.Background(), "instruction")
	require.NoError(t, err)
	require.Equal(t, "Rust", out.Data["disease"])
	require.Equal(t, float64(92), out.Data["confidence"])
}

func TestGateway_UnparseableKeepsRawText(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: "I am sorry, I cannot help with that."},
	}}
	gw := NewGateway(fake, nil)

	_, err := gw.Invoke(context.Background(), "instruction")
	var unparseable *UnparseableError
	require.ErrorAs(t, err, &unparseable)
	require.Contains(t, unparseable.Raw, "cannot help")
}

func TestGateway_RejectsNonObjectTopLevel(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{{Text: `[1,2,3]`}}}
	gw := NewGateway(fake, nil)

	_, err := gw.Invoke(context.Background(), "instruction")
	var unparseable *UnparseableError
	require.ErrorAs(t, err, &unparseable)
}
