package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/md5kit/explain"
	"github.com/byte4ever/md5kit/md5"
)

type textRequest struct {
	Text *string `json:"text" validate:"required"`
}

type compareRequest struct {
	A *string `json:"a" validate:"required"`
	B *string `json:"b" validate:"required"`
}

type hashResponse struct {
	Digest string `json:"digest"`
	Bytes  int64  `json:"bytes"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleHash(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}

	sum := md5.Sum([]byte(*req.Text))

	writeJSON(w, http.StatusOK, hashResponse{
		Digest: md5.ToHex(sum),
		Bytes:  int64(len(*req.Text)),
	})
}

// handleHashRaw streams the body through a Digest so large
// uploads are never held in memory.
func (s *Server) handleHashRaw(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	d := md5.New()

	n, err := io.Copy(d, body)
	if err != nil {
		s.writeBodyError(w, err)

		return
	}

	sum, err := d.Finalize()
	if err != nil {
		writeError(
			w, http.StatusInternalServerError,
			ErrCodeInternalError, err.Error(),
		)

		return
	}

	writeJSON(w, http.StatusOK, hashResponse{
		Digest: md5.ToHex(sum),
		Bytes:  n,
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}

	if limit := s.cfg.Explain.MaxInputBytes; len(*req.Text) > limit {
		writeError(
			w, http.StatusRequestEntityTooLarge, ErrCodeTooLarge,
			fmt.Sprintf("explain accepts at most %d bytes", limit),
		)

		return
	}

	rep := explain.Trace([]byte(*req.Text))

	format := explain.Format(r.URL.Query().Get("format"))
	if format == "" || format == explain.FormatJSON {
		writeJSON(w, http.StatusOK, rep)

		return
	}

	out, err := explain.Render(rep, format)
	if err != nil {
		writeError(
			w, http.StatusBadRequest,
			ErrCodeInvalidRequest, err.Error(),
		)

		return
	}

	ct := "text/plain; charset=utf-8"
	if format == explain.FormatYAML {
		ct = "application/yaml"
	}

	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out) //nolint:errcheck // client gone
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decode(w, r, &req) {
		return
	}

	writeJSON(
		w, http.StatusOK,
		explain.Compare([]byte(*req.A), []byte(*req.B)),
	)
}

// decode reads a bounded JSON body into v and validates it.
// It writes the error response itself and reports whether the
// handler may continue.
func (s *Server) decode(
	w http.ResponseWriter,
	r *http.Request,
	v interface{},
) bool {
	raw, err := io.ReadAll(
		http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes),
	)
	if err != nil {
		s.writeBodyError(w, err)

		return false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(
			w, http.StatusBadRequest,
			ErrCodeInvalidRequest, "malformed JSON body: "+err.Error(),
		)

		return false
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		writeError(
			w, http.StatusBadRequest,
			ErrCodeInvalidRequest, "unexpected data after JSON body",
		)

		return false
	}

	if err := s.validate.Struct(v); err != nil {
		writeError(
			w, http.StatusUnprocessableEntity,
			ErrCodeValidationFailed, err.Error(),
		)

		return false
	}

	return true
}

func (s *Server) writeBodyError(w http.ResponseWriter, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		writeError(
			w, http.StatusRequestEntityTooLarge, ErrCodeTooLarge,
			fmt.Sprintf("body exceeds %d bytes", mbe.Limit),
		)

		return
	}

	writeError(
		w, http.StatusBadRequest,
		ErrCodeInvalidRequest, "reading body: "+err.Error(),
	)
}
