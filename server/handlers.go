// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/lvmath/value"
)

const maxBody = 1 << 20

// callRequest is the body of POST /functions/{name}.
type callRequest struct {
	Args      json.RawMessage `json:"args"`
	Transform bool            `json:"transform"`
}

// functionInfo is one entry of GET /functions.
type functionInfo struct {
	Name       string   `json:"name"`
	Signatures []string `json:"signatures"`
	Transform  bool     `json:"transform"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) config(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.math.Config())
}

func (s *Server) listFunctions(w http.ResponseWriter, _ *http.Request) {
	transforms := make(map[string]bool)
	for _, n := range s.math.TransformNames() {
		transforms[n] = true
	}
	names := s.math.Names()
	out := make([]functionInfo, 0, len(names))
	for _, n := range names {
		fn, err := s.math.Function(n)
		if err != nil {
			writeError(w, s.log, err)
			return
		}
		out = append(out, functionInfo{Name: n, Signatures: fn.Signatures(), Transform: transforms[n]})
	}
	writeJSON(w, http.StatusOK, map[string]any{"functions": out})
}

func (s *Server) callFunction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	req, args, err := s.decodeCall(r.Body)
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	var v value.Value
	if req.Transform {
		v, err = s.math.CallTransform(name, args...)
	} else {
		v, err = s.math.Call(name, args...)
	}
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	tree, err := value.Encode(v)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": tree})
}

// decodeCall reads the request and decodes args in the configured number kind.
func (s *Server) decodeCall(body io.Reader) (callRequest, []value.Value, error) {
	var req callRequest
	dec := json.NewDecoder(io.LimitReader(body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, nil, fmt.Errorf("%w: trailing data after request body", ErrBadRequest)
	}
	raw := bytes.TrimSpace(req.Args)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, nil, nil
	}

	cfg := s.math.Config()
	v, err := value.DecodeJSON(raw, cfg.NumberType(), cfg.Precision)
	if err != nil {
		return req, nil, fmt.Errorf("%w: args: %v", ErrBadRequest, err)
	}
	args, ok := v.(value.Array)
	if !ok {
		return req, nil, fmt.Errorf("%w: args must be a JSON array", ErrBadRequest)
	}

	return req, args, nil
}
