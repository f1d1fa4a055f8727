package bfhl

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc    Service
	email  string
	logger *slog.Logger
}

func NewHandler(svc Service, officialEmail string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, email: officialEmail, logger: logger}
}

// Health is the liveness probe: always 200 with no data or message.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, Envelope{IsSuccess: true, OfficialEmail: h.email})
}

// Handle serves POST /bfhl.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Debug("[bfhl] bad body", "error", err)
		h.respond(w, Failure(&MalformedRequestError{Message: MsgBodyNotObject}))
		return
	}

	h.respond(w, h.svc.Dispatch(r.Context(), body))
}

func (h *Handler) respond(w http.ResponseWriter, res Result) {
	status, env := envelopeFor(h.email, res)
	h.write(w, status, env)
}

func (h *Handler) write(w http.ResponseWriter, status int, env Envelope) {
	if err := writeJSON(w, status, env); err != nil {
		h.logger.Warn("[bfhl] write response", "error", err)
	}
}

var errNotObject = errors.New("body is not a JSON object")

// decodeObject reads exactly one JSON object, keeping numbers as json.Number.
func decodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errNotObject
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}
