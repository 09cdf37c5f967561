package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tagarena/config"
	"tagarena/network"
	"tagarena/protocol"
	"tagarena/room"
)

func main() {
	issue := flag.String("issue-token", "", "print a /debug/state token for this subject and exit")
	ttl := flag.Duration("token-ttl", time.Hour, "lifetime of an issued token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("tagserver: %v", err)
	}

	var auth *network.Auth
	if cfg.DebugSecret != "" {
		if auth, err = network.NewAuth(cfg.DebugSecret); err != nil {
			log.Fatalf("tagserver: %v", err)
		}
	}
	if *issue != "" {
		if auth == nil {
			log.Fatal("tagserver: TAG_DEBUG_SECRET is not set")
		}
		tok, err := auth.IssueToken(*issue, *ttl)
		if err != nil {
			log.Fatalf("tagserver: issue token: %v", err)
		}
		fmt.Println(tok)
		return
	}

	codec, err := protocol.CodecByName(cfg.Codec)
	if err != nil {
		log.Fatalf("tagserver: %v", err)
	}

	rm := room.New(room.Options{
		Codec:         codec,
		MatchDuration: cfg.MatchDuration,
		Rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	go rm.Run()
	defer rm.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      network.NewMux(network.NewServer(rm, cfg.AllowedOrigin), auth),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("tagserver: listening on %s (codec %s, match %s)", cfg.Addr, codec.Name(), cfg.MatchDuration)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("tagserver: listen failed: %v", err)
	}
	log.Println("tagserver: stopped")
}
