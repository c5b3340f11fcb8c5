package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// SchemaLister exposes the table names of the configured schema.
type SchemaLister interface {
	Tables(ctx context.Context) ([]string, error)
	Name() string
}

type TablesHandler struct {
	Schema SchemaLister
}

func NewTablesHandler(schema SchemaLister) *TablesHandler {
	return &TablesHandler{Schema: schema}
}

// List handles GET /table, the schema introspection debug endpoint.
func (h *TablesHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tables, err := h.Schema.Tables(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list tables")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"schema": h.Schema.Name(),
		"tables": tables,
	})
}
