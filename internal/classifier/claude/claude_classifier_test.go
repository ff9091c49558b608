package claude_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/classifier"
	"docforensics/internal/classifier/claude"
	"docforensics/internal/config"
	"docforensics/internal/port"
)

func newTestClassifier(serverURL string) *claude.Classifier {
	cfg := &config.ClassifierProviderConfig{
		Provider:     "claude",
		APIKey:       "test-api-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewClassifierWithEndpoint(cfg, serverURL)
}

func TestClassify_Image_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])

		messages := reqBody["messages"].([]interface{})
		content := messages[0].(map[string]interface{})["content"].([]interface{})
		if !assert.Len(t, content, 2) {
			return
		}
		image := content[0].(map[string]interface{})
		assert.Equal(t, "image", image["type"])
		assert.Equal(t, "image/jpeg", image["source"].(map[string]interface{})["media_type"])
		assert.Equal(t, "text", content[1].(map[string]interface{})["type"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": `{"document_type":"receipt"}`},
			},
			"stop_reason": "end_turn",
		})
	}))
	defer server.Close()

	out, err := newTestClassifier(server.URL).Classify(context.Background(), port.ClassifyInput{
		FileBytes: []byte{0xff, 0xd8}, ContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"document_type":"receipt"}`, out.RawText)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)
}

func TestClassify_PDFUsesDocumentBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		content := reqBody["messages"].([]interface{})[0].(map[string]interface{})["content"].([]interface{})
		assert.Equal(t, "document", content[0].(map[string]interface{})["type"])

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{}"}],"stop_reason":"max_tokens"}`))
	}))
	defer server.Close()

	out, err := newTestClassifier(server.URL).Classify(context.Background(), port.ClassifyInput{
		FileBytes: []byte("%PDF"), ContentType: "application/pdf",
	})

	require.NoError(t, err, "truncated answers are left to the normalizer")
	assert.Equal(t, "{}", out.RawText)
}

func TestClassify_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClassifier(server.URL).Classify(context.Background(), port.ClassifyInput{
		FileBytes: []byte("x"), ContentType: "image/png",
	})

	var rlErr *classifier.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "claude", rlErr.Provider)
	assert.Equal(t, 60.0, rlErr.RetryAfter.Seconds())
}

func TestClassify_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	_, err := newTestClassifier(server.URL).Classify(context.Background(), port.ClassifyInput{
		FileBytes: []byte("x"), ContentType: "image/png",
	})
	assert.ErrorContains(t, err, "empty response")
}

func TestClassify_UnsupportedContentType(t *testing.T) {
	_, err := newTestClassifier("http://unused").Classify(context.Background(), port.ClassifyInput{
		FileBytes: []byte("x"), ContentType: "text/plain",
	})

	var unsupported *classifier.UnsupportedContentTypeError
	assert.ErrorAs(t, err, &unsupported)
}
