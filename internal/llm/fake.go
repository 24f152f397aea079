package llm

import "context"

// FakeClient is a scripted Client for tests. Each call pops the next queued
// reply; Calls records every instruction received.
type FakeClient struct {
	Replies []FakeReply
	Calls   []string
}

type FakeReply struct {
	Text string
	Err  error
}

func (f *FakeClient) Name() string { return "fake" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateText(_ context.Context, instruction string) (string, error) {
	f.Calls = append(f.Calls, instruction)
	if len(f.Replies) == 0 {
		return "", ErrEmptyResponse
	}
	r := f.Replies[0]
	f.Replies = f.Replies[1:]
	return r.Text, r.Err
}
