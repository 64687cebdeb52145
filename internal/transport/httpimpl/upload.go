package httpimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Henrique28122000/meuchat-engine/pkg/errors"
)

type uploadResponse struct {
	Status   string `json:"status"`
	FilePath string `json:"file_path"`
	FileURL  string `json:"file_url"`
}

// UploadBinary sends the payload as a multipart form and returns the
// server-side path it was stored under. That path, not any local preview
// location, is what later message or status create calls reference.
func (h *HttpImpl) UploadBinary(ctx context.Context, payload []byte, ownerID string) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("audio_file", "audio.mp3")
	if err != nil {
		return "", errors.Wrap(err, "build upload form")
	}
	if _, err := part.Write(payload); err != nil {
		return "", errors.Wrap(err, "write upload payload")
	}
	if err := form.WriteField("user_id", ownerID); err != nil {
		return "", errors.Wrap(err, "write upload owner")
	}
	if err := form.Close(); err != nil {
		return "", errors.Wrap(err, "finalize upload form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/uploadAudio.php", &body)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := h.Http.Do(req)
	if err != nil {
		return "", errors.Wrap(errors.ErrTransportUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Wrap(errors.ErrTransportUnavailable, fmt.Sprintf("upload returned %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ErrTransportUnavailable, err.Error())
	}

	var decoded uploadResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", errors.Wrap(errors.ErrInconsistent, fmt.Sprintf("undecodable upload response: %v", err))
	}

	switch {
	case decoded.FilePath != "":
		return decoded.FilePath, nil
	case decoded.FileURL != "":
		return decoded.FileURL, nil
	default:
		return "", errors.Wrap(errors.ErrInconsistent, "upload response carried no file reference")
	}
}
