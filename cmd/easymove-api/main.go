// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easymove/internal/config"
	httptransport "easymove/internal/http"
	"easymove/internal/maps"
	"easymove/internal/modules/distance"
	"easymove/internal/modules/pricing"
	"easymove/internal/payments"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var lookup distance.Lookup
	if cfg.GoogleMapsAPIKey != "" {
		mapsSvc, err := maps.NewDistanceService(cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		lookup = mapsSvc
	} else {
		log.Println("no Google Maps API key configured, quotes will use fallback distance estimation")
	}

	pricingSvc := pricing.NewService(pricing.DefaultRates())
	distanceSvc := distance.NewService(lookup)

	stripeSvc := payments.NewStripeService(cfg.StripeSecretKey)
	if !stripeSvc.Enabled() {
		log.Println("no Stripe secret key configured, card payments disabled")
	}
	var paypalClient *payments.PayPalClient
	if cfg.PayPalClientID != "" && cfg.PayPalClientSecret != "" {
		paypalClient = payments.NewPayPalClient(cfg.PayPalBaseURL, cfg.PayPalClientID, cfg.PayPalClientSecret)
	}

	router := httptransport.NewRouter(pricingSvc, distanceSvc, stripeSvc, paypalClient)
	server := &http.Server{Addr: ":" + cfg.ServerPort, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on :%s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
