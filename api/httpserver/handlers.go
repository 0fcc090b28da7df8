package httpserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/solanadevsnest/auctionPal/auction"
	"github.com/solanadevsnest/auctionPal/crypto"
	"github.com/solanadevsnest/auctionPal/services"
)

// AuctionHandler dispatches signed transition requests to the processor and
// records applied transitions in the audit store.
type AuctionHandler struct {
	processor *auction.Processor
	store     services.TransitionStore
	log       *slog.Logger
}

// NewAuctionHandler creates the dispatcher for the four auction operations.
func NewAuctionHandler(processor *auction.Processor, store services.TransitionStore, log *slog.Logger) *AuctionHandler {
	return &AuctionHandler{processor: processor, store: store, log: log}
}

// RegisterRoutes registers the auction routes.
func (h *AuctionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auction/exhibit", h.exhibit)
	r.Post("/auction/bid", h.bid)
	r.Post("/auction/cancel", h.cancel)
	r.Post("/auction/close", h.close)
	r.Get("/auction/{record}", h.record)
	r.Get("/auction/{record}/transitions", h.transitions)
}

// TransitionResponse reports the outcome of an applied transition.
type TransitionResponse struct {
	Status string `json:"status"`
	Record string `json:"record"`
}

func (h *AuctionHandler) exhibit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	signed, err := auction.DecodeMessage[auction.Signed[auction.ExhibitRequest]](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	req, signer, err := signed.Recover()
	if err != nil {
		http.Error(w, fmt.Sprintf("could not recover request signature: %v", err), http.StatusForbidden)
		return
	}

	h.apply(w, req.Instruction(), req.Accounts(signer), applied{
		record: req.Record,
		kind:   auction.KindExhibit,
		actor:  signer,
		price:  req.InitialPrice,
	})
}

func (h *AuctionHandler) bid(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	signed, err := auction.DecodeMessage[auction.Signed[auction.BidRequest]](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	req, signer, err := signed.Recover()
	if err != nil {
		http.Error(w, fmt.Sprintf("could not recover request signature: %v", err), http.StatusForbidden)
		return
	}

	h.apply(w, req.Instruction(), req.Accounts(signer), applied{
		record: req.Record,
		kind:   auction.KindBid,
		actor:  signer,
		price:  req.Amount,
	})
}

func (h *AuctionHandler) cancel(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	signed, err := auction.DecodeMessage[auction.Signed[auction.CancelRequest]](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	req, signer, err := signed.Recover()
	if err != nil {
		http.Error(w, fmt.Sprintf("could not recover request signature: %v", err), http.StatusForbidden)
		return
	}

	h.apply(w, req.Instruction(), req.Accounts(signer), applied{
		record: req.Record,
		kind:   auction.KindCancel,
		actor:  signer,
	})
}

func (h *AuctionHandler) close(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	signed, err := auction.DecodeMessage[auction.Signed[auction.CloseRequest]](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	req, signer, err := signed.Recover()
	if err != nil {
		http.Error(w, fmt.Sprintf("could not recover request signature: %v", err), http.StatusForbidden)
		return
	}

	h.apply(w, req.Instruction(), req.Accounts(signer), applied{
		record: req.Record,
		kind:   auction.KindClose,
		actor:  signer,
	})
}

func (h *AuctionHandler) record(w http.ResponseWriter, r *http.Request) {
	recordID, err := crypto.NewIdentityFromString(chi.URLParam(r, "record"))
	if err != nil {
		http.Error(w, "invalid record identity", http.StatusBadRequest)
		return
	}

	record, err := h.processor.Record(recordID)
	if err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !record.Initialized {
		http.Error(w, "record not initialized", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *AuctionHandler) transitions(w http.ResponseWriter, r *http.Request) {
	record := chi.URLParam(r, "record")
	if _, err := crypto.NewIdentityFromString(record); err != nil {
		http.Error(w, "invalid record identity", http.StatusBadRequest)
		return
	}

	transitions, err := h.store.ListTransitions(record)
	if err != nil {
		http.Error(w, "could not load transitions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transitions)
}

type applied struct {
	record crypto.Identity
	kind   auction.Kind
	actor  crypto.Identity
	price  uint64
}

func (h *AuctionHandler) apply(w http.ResponseWriter, data []byte, accounts []auction.AccountMeta, info applied) {
	if err := h.processor.Process(data, accounts); err != nil {
		category := auction.Classify(err)
		h.log.Info("transition rejected",
			"kind", info.kind.String(), "record", info.record.String(),
			"category", category.String(), "err", err)
		http.Error(w, err.Error(), statusForCategory(category))
		return
	}

	entry := &services.Transition{
		ID:         uuid.New(),
		Record:     info.record.String(),
		Kind:       info.kind.String(),
		Actor:      info.actor.String(),
		Price:      info.price,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.store.SaveTransition(entry); err != nil {
		// The transition itself is committed; a failed audit write is logged
		// rather than surfaced as a transition failure.
		h.log.Error("saving transition audit entry", "err", err)
	}

	h.log.Info("transition applied",
		"kind", info.kind.String(), "record", info.record.String(), "actor", info.actor.String())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&TransitionResponse{Status: "ok", Record: info.record.String()})
}

func statusForCategory(c auction.Category) int {
	switch c {
	case auction.CategoryAuthorization:
		return http.StatusForbidden
	case auction.CategoryState, auction.CategoryTemporal:
		return http.StatusConflict
	case auction.CategoryEconomic:
		return http.StatusBadRequest
	case auction.CategoryResource:
		return http.StatusPaymentRequired
	case auction.CategoryCustody:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
