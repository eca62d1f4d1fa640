package transcriber

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAudioNotFound     = errors.New("audio file not found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// InputError reports a problem with the audio file itself, as opposed to a
// failure of the transcription service.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e == nil || e.Err == nil {
		return "invalid audio input"
	}
	if errors.Is(e.Err, ErrUnsupportedFormat) {
		return fmt.Sprintf("%v: %s (supported: %s)", e.Err, e.Path, strings.Join(SupportedFormats, ", "))
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IsInputError(err error) bool {
	var input *InputError
	return errors.As(err, &input)
}
