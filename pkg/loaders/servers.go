package loaders

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/agentstation/panelkit/internal/transport"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/logging"
	"github.com/agentstation/panelkit/pkg/models"
)

// LoadServerStatus loads the lifecycle state of one server as reported by
// its node. It returns nil when the API does not answer with a 2xx status.
func (l *Loader) LoadServerStatus(ctx context.Context, id string) (*models.ServerStatus, error) {
	path, err := serverPath(id)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithServer(ctx, id)

	var status models.ServerStatus
	res, err := l.load(ctx, "load_server_status", path+"/status", &status, true)
	if err != nil || !res.decoded {
		return nil, err
	}
	return &status, nil
}

// SendSignal asks the server's node to start, stop, restart or kill it.
// A non-2xx answer is returned as an *errors.APIError carrying the body text.
func (l *Loader) SendSignal(ctx context.Context, id string, signal models.ServerSignal) error {
	path, err := serverPath(id)
	if err != nil {
		return err
	}
	signal, err = models.ParseServerSignal(string(signal))
	if err != nil {
		return errors.WrapValidation("signal", err)
	}
	path += "/signal"

	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithServer(ctx, id)
	ctx = logging.WithOperation(ctx, "send_signal")

	opts, err := transport.JSONOptions(http.MethodPost, signal)
	if err != nil {
		return err
	}
	resp, err := l.fetcher.Fetch(ctx, path, opts)
	if err != nil {
		return err
	}
	if !transport.IsSuccess(resp) {
		return errors.NewAPIError(path, resp.StatusCode, transport.ErrorBody(resp))
	}
	transport.Discard(resp)

	logging.FromContext(ctx).Info().
		Str("signal", string(signal)).
		Msg("Signal sent")
	return nil
}
