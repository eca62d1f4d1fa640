package transcriber

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sashabaranov/go-openai"
)

type capturedUpload struct {
	path     string
	model    string
	language string
	filename string
	content  string
}

func newTestClient(t *testing.T, status int, body string, got *capturedUpload) *openai.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			got.path = r.URL.Path
			if err := r.ParseMultipartForm(1 << 20); err == nil {
				got.model = r.FormValue("model")
				got.language = r.FormValue("language")
				if file, header, err := r.FormFile("file"); err == nil {
					got.filename = header.Filename
					data, _ := io.ReadAll(file)
					got.content = string(data)
					file.Close()
				}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("sk-test")
	cfg.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func writeAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake audio bytes"), 0644); err != nil {
		t.Fatalf("failed to write audio fixture: %v", err)
	}
	return path
}

func TestNewTranscriber(t *testing.T) {
	client := openai.NewClient("sk-test")

	tests := []struct {
		name      string
		config    Config
		wantModel string
		wantErr   bool
	}{
		{
			name:      "openai with explicit model",
			config:    Config{Provider: "openai", Model: "gpt-4o-mini-transcribe"},
			wantModel: "gpt-4o-mini-transcribe",
		},
		{
			name:      "openai default model",
			config:    Config{Provider: "openai"},
			wantModel: "whisper-1",
		},
		{
			name:      "groq default model",
			config:    Config{Provider: "groq", Language: "en"},
			wantModel: "whisper-large-v3-turbo",
		},
		{
			name:    "unsupported provider",
			config:  Config{Provider: "whisper.cpp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTranscriber(client, tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTranscriber() error = %v", err)
			}

			var model string
			switch a := tr.(type) {
			case *OpenAIAdapter:
				model = a.config.Model
			case *GroqTranscriptionAdapter:
				model = a.config.Model
			default:
				t.Fatalf("unexpected adapter type %T", tr)
			}
			if model != tt.wantModel {
				t.Errorf("model = %q, want %q", model, tt.wantModel)
			}
		})
	}
}

func TestNewTranscriberNilClient(t *testing.T) {
	if _, err := NewTranscriber(nil, Config{Provider: "openai"}); err == nil {
		t.Error("expected error for nil client")
	}
}

func TestValidateAudioFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    func() string
		wantErr error
	}{
		{"wav", func() string { return writeAudio(t, "meeting.wav") }, nil},
		{"upper case extension", func() string { return writeAudio(t, "MEETING.MP3") }, nil},
		{"webm", func() string { return writeAudio(t, "clip.webm") }, nil},
		{"missing file", func() string { return filepath.Join(dir, "nope.wav") }, ErrAudioNotFound},
		{"directory", func() string { return dir }, ErrAudioNotFound},
		{"unsupported extension", func() string { return writeAudio(t, "notes.txt") }, ErrUnsupportedFormat},
		{"no extension", func() string { return writeAudio(t, "recording") }, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAudioFile(tt.path())
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAudioFile() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAudioFile() error = %v, want %v", err, tt.wantErr)
			}
			if !IsInputError(err) {
				t.Errorf("expected an InputError, got %T", err)
			}
		})
	}
}

func TestOpenAIAdapterTranscribe(t *testing.T) {
	var got capturedUpload
	client := newTestClient(t, http.StatusOK, `{"text":"hello from the meeting"}`, &got)
	path := writeAudio(t, "meeting.m4a")

	tr, err := NewTranscriber(client, Config{Provider: "openai", Language: "en"})
	if err != nil {
		t.Fatalf("NewTranscriber() error = %v", err)
	}

	text, err := tr.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "hello from the meeting" {
		t.Errorf("text = %q", text)
	}

	if got.path != "/v1/audio/transcriptions" {
		t.Errorf("request path = %q", got.path)
	}
	if got.model != "whisper-1" {
		t.Errorf("model = %q, want whisper-1", got.model)
	}
	if got.language != "en" {
		t.Errorf("language = %q, want en", got.language)
	}
	if got.filename != "meeting.m4a" {
		t.Errorf("uploaded filename = %q", got.filename)
	}
	if got.content != "fake audio bytes" {
		t.Errorf("uploaded content = %q", got.content)
	}
}

func TestGroqAdapterTranscribe(t *testing.T) {
	var got capturedUpload
	client := newTestClient(t, http.StatusOK, `{"text":"hola"}`, &got)
	path := writeAudio(t, "clip.mp3")

	tr := NewGroqTranscriptionAdapter(client, Config{Provider: "groq"})
	text, err := tr.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "hola" {
		t.Errorf("text = %q", text)
	}
	if got.model != "whisper-large-v3-turbo" {
		t.Errorf("model = %q", got.model)
	}
}

func TestTranscribeRejectsInputBeforeUpload(t *testing.T) {
	var got capturedUpload
	client := newTestClient(t, http.StatusOK, `{"text":"unused"}`, &got)
	tr := NewOpenAIAdapter(client, Config{Provider: "openai"})

	_, err := tr.Transcribe(context.Background(), writeAudio(t, "slides.pdf"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	if got.path != "" {
		t.Errorf("expected no request, got one to %q", got.path)
	}
}

func TestTranscribeAPIError(t *testing.T) {
	client := newTestClient(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`, nil)
	tr := NewOpenAIAdapter(client, Config{Provider: "openai"})

	_, err := tr.Transcribe(context.Background(), writeAudio(t, "meeting.wav"))
	if err == nil {
		t.Fatal("expected error")
	}
	if IsInputError(err) {
		t.Error("service failure must not be reported as an input error")
	}

	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected wrapped *openai.APIError, got %T: %v", err, err)
	}
	if apiErr.HTTPStatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", apiErr.HTTPStatusCode)
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := &InputError{Path: "a.txt", Err: ErrUnsupportedFormat}
	want := "unsupported audio format: a.txt (supported: mp3, mp4, mpeg, mpga, m4a, wav, webm)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
