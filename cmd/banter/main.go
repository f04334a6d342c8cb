package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/lgrossi/banter/internal/bus"
	"github.com/lgrossi/banter/internal/client"
	"github.com/lgrossi/banter/internal/tui"
)

func main() {
	serverFlag := flag.String("server", "http://localhost:5000", "banterd base URL")
	nameFlag := flag.String("name", "", "display name")
	flag.Parse()

	name := *nameFlag
	if name == "" {
		name = os.Getenv("BANTER_NAME")
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "error: display name required (-name or BANTER_NAME)")
		os.Exit(1)
	}

	if !waitForServer(*serverFlag, 5*time.Second) {
		fmt.Fprintf(os.Stderr, "no server reachable at %s\n", *serverFlag)
		os.Exit(1)
	}

	if err := client.Login(*serverFlag, name); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	b := bus.New()
	c, err := client.Dial(*serverFlag, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	var typingTTL time.Duration
	if v := os.Getenv("BANTER_TYPING_TTL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			typingTTL = time.Duration(ms) * time.Millisecond
		}
	}

	s := client.NewSession(c, b, name, typingTTL)
	defer s.Close()

	if err := c.Join(name); err != nil {
		fmt.Fprintf(os.Stderr, "join: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(s, name)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// waitForServer polls the health endpoint until the server answers.
func waitForServer(baseURL string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/metrics")
		if err == nil {
			_ = resp.Body.Close()
			return true
		}
		time.Sleep(300 * time.Millisecond)
	}
	return false
}
