package roboflow

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		APIKey:     "test-key",
		ProjectID:  "cattle-breed-9rfl6-xqimv-mqao3",
		Version:    6,
		Confidence: 40,
		Overlap:    30,
	}
}

func testClient(serverURL string) *roboflowClient {
	c := NewClient(testConfig()).(*roboflowClient)
	c.baseURL = serverURL
	return c
}

func TestDetect(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	var gotPath, gotBody string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"predictions":[
			{"class":"Gir","confidence":0.91,"x":120,"y":80,"width":200,"height":160},
			{"class":"Sahiwal","confidence":0.42,"x":300,"y":90,"width":180,"height":150}
		]}`)
	}))
	defer server.Close()

	detections, err := testClient(server.URL).Detect(context.Background(), image)
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if len(detections) != 2 {
		t.Fatalf("got %d detections, want 2", len(detections))
	}
	if detections[0].Label != "Gir" || detections[0].Confidence != 0.91 {
		t.Errorf("first detection = %+v", detections[0])
	}
	if detections[0].Width != 200 || detections[0].Height != 160 {
		t.Errorf("bounding box not carried over: %+v", detections[0])
	}

	if gotPath != "/cattle-breed-9rfl6-xqimv-mqao3/6" {
		t.Errorf("unexpected path %q", gotPath)
	}
	for param, want := range map[string]string{
		"api_key":    "test-key",
		"confidence": "40",
		"overlap":    "30",
	} {
		if got := gotQuery[param]; len(got) != 1 || got[0] != want {
			t.Errorf("query param %s = %v, want %q", param, got, want)
		}
	}
	if gotBody != base64.StdEncoding.EncodeToString(image) {
		t.Errorf("body is not the base64-encoded image: %q", gotBody)
	}
}

func TestDetectNoPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"predictions":[]}`)
	}))
	defer server.Close()

	detections, err := testClient(server.URL).Detect(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if len(detections) != 0 {
		t.Errorf("got %d detections, want none", len(detections))
	}
}

func TestDetectPredictionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"error":"model not found"}`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Detect(context.Background(), []byte("img"))
	if err == nil || !strings.Contains(err.Error(), "model not found") {
		t.Errorf("expected prediction error, got %v", err)
	}
}

func TestDetectServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"message":"invalid api key"}`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Detect(context.Background(), []byte("img"))
	if err == nil || !strings.Contains(err.Error(), "roboflow api error") {
		t.Errorf("expected api error, got %v", err)
	}
}
