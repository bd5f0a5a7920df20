package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

type serveCmd struct {
	addr   string
	silent bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the document over HTTP" }
func (*serveCmd) Usage() string {
	return `poverty serve [-addr <addr>] [-silent]

  Serves the document on GET / and accepts transactions on
  POST /transaction/insert. The document file is rewritten after each
  accepted mutation. With -silent the document itself is not exposed.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Address to listen on.")
	f.BoolVar(&c.silent, "silent", false, "Refuse to serve the document body on GET /.")
}

func (c *serveCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The engine is single-writer: handlers run the document mutations
	// through this server's router only, and chi serves them off one
	// engine instance guarded by the handler closures below.
	s := &server{engine: p, silent: c.silent, save: func() error { return Save(p) }}

	log.Printf("Listening on %s.", c.addr)
	if err := http.ListenAndServe(c.addr, s.router()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// server is the HTTP adapter over one engine instance.
type server struct {
	engine *poverty.Poverty
	silent bool
	save   func() error
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Get("/", s.handleDocument)
	r.Post("/transaction/insert", s.handleInsertTransaction)
	return r
}

func (s *server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if s.silent {
		writeJSONError(w, http.StatusForbidden, "document is not served in silent mode")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = s.engine.Encode(w)
}

func (s *server) handleInsertTransaction(w http.ResponseWriter, r *http.Request) {
	var tx poverty.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		writeJSONError(w, http.StatusBadRequest, "could not parse transaction body")
		return
	}
	id, err := s.engine.InsertTransaction(tx)
	if err != nil {
		writeJSONError(w, statusOf(err), err.Error())
		return
	}
	if s.save != nil {
		if err := s.save(); err != nil {
			log.Printf("could not save document: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "could not persist document")
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// statusOf maps the engine's error taxonomy onto HTTP statuses: shape and
// duplicate failures are client errors, unresolved ids are not found,
// in-use refusals are conflicts.
func statusOf(err error) int {
	var (
		invalid    *poverty.InvalidError
		duplicate  *poverty.DuplicateError
		duplicates *poverty.DuplicatesError
		notExist   *poverty.NotExistError
		inUse      *poverty.InUseError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &duplicate), errors.As(err, &duplicates):
		return http.StatusBadRequest
	case errors.As(err, &notExist):
		return http.StatusNotFound
	case errors.As(err, &inUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
