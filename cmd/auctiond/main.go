// Command auctiond runs the auction dispatcher: an HTTP surface over the
// escrow-auction state machine backed by an in-memory ledger host.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solanadevsnest/auctionPal/api/httpserver"
	"github.com/solanadevsnest/auctionPal/auction"
	"github.com/solanadevsnest/auctionPal/cmd/common"
	"github.com/solanadevsnest/auctionPal/ledger"
	"github.com/solanadevsnest/auctionPal/token"
)

func main() {
	var (
		listenAddr   = flag.String("listen", "127.0.0.1:8080", "address for the HTTP server")
		programIDHex = flag.String("program-id", "", "protocol identity as hex (generated if empty)")
		postgresDSN  = flag.String("postgres-dsn", "", "postgres DSN for the audit store (in-memory if empty)")
		rentReserve  = flag.Uint64("rent-base-reserve", ledger.DefaultRent().BaseReserve, "minimum balance for persistent accounts")
		rentPerByte  = flag.Uint64("rent-price-per-byte", ledger.DefaultRent().PricePerByte, "additional balance required per data byte")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	programID, err := common.LoadOrGenerateProgramID(*programIDHex)
	if err != nil {
		log.Error("loading program id", "err", err)
		os.Exit(1)
	}

	store, err := common.NewTransitionStore(*postgresDSN)
	if err != nil {
		log.Error("creating transition store", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	host := ledger.NewHost()
	tokens := token.NewMemoryService(programID, host)
	rent := ledger.StandardRent{BaseReserve: *rentReserve, PricePerByte: *rentPerByte}

	processor, err := auction.NewProcessor(programID, host, tokens, ledger.SystemClock{}, rent)
	if err != nil {
		log.Error("creating processor", "err", err)
		os.Exit(1)
	}

	handler := httpserver.NewAuctionHandler(processor, store, log)
	srv, err := httpserver.New(&httpserver.HTTPServerConfig{
		ListenAddr:               *listenAddr,
		Log:                      log,
		DrainDuration:            5 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             10 * time.Second,
	}, handler)
	if err != nil {
		log.Error("creating http server", "err", err)
		os.Exit(1)
	}

	log.Info("auctiond starting", "programID", programID.String())
	srv.RunInBackground()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	srv.Shutdown()
}
