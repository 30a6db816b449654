package llm_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewerAgainst(t *testing.T, handler http.HandlerFunc) *llm.Reviewer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return llm.NewReviewer(llm.NewChatClient(&llm.ChatConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}))
}

func TestReviewSubmission(t *testing.T) {
	t.Parallel()
	const review = "## What works\nplenty\n## What to improve\nlittle\n## Verdict\nkeep going"
	var gotBody []byte
	reviewer := newReviewerAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		sonic.ConfigDefault.NewEncoder(w).Encode(chatReply(review))
	})

	text, err := reviewer.ReviewSubmission(context.Background(), "my daily work")
	require.NoError(t, err)
	// The produced text is passed through verbatim, structure unvalidated
	assert.Equal(t, review, text)
	assert.Contains(t, string(gotBody), "my daily work")
	assert.Contains(t, string(gotBody), "test-model")
}

func TestReviewSubmissionErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc    string
		Handler http.HandlerFunc
		Error   error
	}{
		{
			Desc: "non-success status is unavailability",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			Error: errorvalues.ErrReviewUnavailable,
		},
		{
			Desc: "undecodable body is unavailability",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>oops</html>"))
			},
			Error: errorvalues.ErrReviewUnavailable,
		},
		{
			Desc: "no choices is an empty review",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
			Error: errorvalues.ErrReviewEmpty,
		},
		{
			Desc: "whitespace-only text is an empty review",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				sonic.ConfigDefault.NewEncoder(w).Encode(chatReply("  \n\t "))
			},
			Error: errorvalues.ErrReviewEmpty,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			reviewer := newReviewerAgainst(t, tc.Handler)
			_, err := reviewer.ReviewSubmission(context.Background(), "content")
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}
