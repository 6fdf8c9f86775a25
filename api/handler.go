package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"gridin/core/display"
	"gridin/core/format"
	"gridin/core/grading"
	"gridin/internal/errors"
)

// maxBodyBytes bounds request bodies; grid-in text is a few characters
const maxBodyBytes = 64 << 10

// handleCheck handles POST /v1/check
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Key == "" {
		s.writeError(w, r, errors.Input("key is required"))
		return
	}

	answer := grading.NewAnswer(req.Key)
	s.writeJSON(w, &CheckResponse{
		RequestID:         requestID(r.Context()),
		Correct:           answer.Accepts(req.Response),
		MixedAnswer:       answer.MixedAnswer(req.Response),
		KeyParseable:      answer.Parseable(),
		KeyDisplay:        answer.Display(),
		KeyValue:          display.Value(answer.Value()),
		ValidResponse:     format.Valid(req.Response),
		FormattedResponse: format.Format(req.Response),
	}, http.StatusOK)
}

// handleDisplay handles POST /v1/display
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	var req DisplayRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, &DisplayResponse{
		RequestID: requestID(r.Context()),
		Display:   display.Display(req.Text),
	}, http.StatusOK)
}

// handleFormat handles POST /v1/format
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, &FormatResponse{
		RequestID: requestID(r.Context()),
		Formatted: format.Format(req.Text),
		Valid:     format.Valid(req.Text),
	}, http.StatusOK)
}

// decode reads a single JSON object from the request body
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.TypeInput, "invalid JSON body", err)
	}
	if dec.More() {
		return errors.Input("body must hold a single JSON object")
	}
	return nil
}

// statusFor maps an error type to an HTTP status
func statusFor(t errors.Type) int {
	switch t {
	case errors.TypeInput:
		return http.StatusBadRequest
	case errors.TypeNotSupported:
		return http.StatusNotImplemented
	case errors.TypeStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func describe(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
