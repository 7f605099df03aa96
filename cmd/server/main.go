package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"net"
	"os"

	"tile-curses/internal/app"
	"tile-curses/internal/config"
	"tile-curses/internal/server"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	envFile := flag.String("env", ".env", "optional .env file")
	scenePath := flag.String("scene", "", "scene JSON file (overrides CURSES_SCENE)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}

	// Generate host key if it doesn't exist
	if err := ensureHostKey(cfg.HostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}

	go a.Loop.Run()
	defer a.Loop.Stop()

	sshServer := server.NewSSHServer(cfg.ListenAddr, cfg.HostKeyPath, a.Loop)
	_, port, _ := net.SplitHostPort(cfg.ListenAddr)
	log.Printf("Starting tile-curses viewer, connect with: ssh -t -p %s localhost", port)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
