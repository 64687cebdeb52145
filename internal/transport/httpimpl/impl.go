package httpimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/fx"

	"github.com/Henrique28122000/meuchat-engine/internal/transport"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/errors"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type HttpImpl struct {
	Http    *http.Client
	BaseURL string
	Logger  logger.Logger
}

func New(opts Opts) *HttpImpl {
	return &HttpImpl{
		Http:    &http.Client{Timeout: opts.Config.Api.Timeout},
		BaseURL: strings.TrimRight(opts.Config.Api.BaseURL, "/"),
		Logger:  opts.Logger,
	}
}

var _ transport.Client = (*HttpImpl)(nil)

func (h *HttpImpl) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/"+endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	resp, err := h.Http.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrTransportUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrap(errors.ErrTransportUnavailable, fmt.Sprintf("backend returned %d for %s", resp.StatusCode, endpoint))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.ErrTransportUnavailable, err.Error())
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(errors.ErrInconsistent, fmt.Sprintf("undecodable response from %s: %v", endpoint, err))
	}
	return nil
}

func (h *HttpImpl) postJSON(ctx context.Context, endpoint string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/"+endpoint, bytes.NewReader(raw))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Http.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrTransportUnavailable, err.Error())
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrap(errors.ErrTransportUnavailable, fmt.Sprintf("backend returned %d for %s", resp.StatusCode, endpoint))
	}
	return nil
}
