package cmd

import (
	"fmt"

	"easeinvo/internal/config"
	"easeinvo/internal/invoice"
	"easeinvo/internal/store"
	"easeinvo/pkg/models"
)

// openStore loads the configuration and opens the data directory. Every
// command goes through here so that EASEINVO_DATA_DIR is honored uniformly.
func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}

// newDraft creates a fresh draft with the configured defaults applied.
func newDraft(cfg *config.Config) models.Invoice {
	inv := invoice.NewDraft()
	return applyDefaults(inv, cfg)
}

func applyDefaults(inv models.Invoice, cfg *config.Config) models.Invoice {
	inv.Currency = cfg.Currency
	inv.AccentColor = cfg.AccentColor
	if t := models.Template(cfg.Template); t.Valid() {
		inv.Template = t
	}
	return inv
}

// currentDraft restores the in-progress invoice, or starts a fresh draft on
// first run.
func currentDraft(cfg *config.Config, st *store.Store) models.Invoice {
	if inv, ok := st.LoadDraft(); ok {
		return inv
	}
	return newDraft(cfg)
}

// commit stores inv as the new current editing state. Only drafts land in the
// auto-persisted draft slot; a saved invoice is committed through an explicit
// save instead.
func commit(st *store.Store, inv models.Invoice) error {
	return st.SaveDraft(inv)
}

// findSaved looks an invoice up in the saved collection by identifier.
func findSaved(st *store.Store, id string) (models.Invoice, bool) {
	for _, inv := range st.LoadInvoices() {
		if inv.ID == id {
			return inv, true
		}
	}
	return models.Invoice{}, false
}

// resolveInvoice returns the saved invoice with the given identifier, or the
// current draft when id is empty.
func resolveInvoice(cfg *config.Config, st *store.Store, id string) (models.Invoice, error) {
	if id == "" {
		return currentDraft(cfg, st), nil
	}
	inv, ok := findSaved(st, id)
	if !ok {
		return models.Invoice{}, fmt.Errorf("no saved invoice with id %q", id)
	}
	return inv, nil
}
