package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/LovetheFrogs/language-exploring/webserver"
)

func main() {
	l, err := net.Listen("tcp", "127.0.0.1:7878")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to listen: %v\n", err)
		os.Exit(1)
	}

	// The websocket echo lives on its own port because it rides net/http
	// while the main server speaks TCP by hand.
	go func() {
		http.HandleFunc("/echo", webserver.EchoHandler)
		if err := http.ListenAndServe("127.0.0.1:7879", nil); err != nil {
			fmt.Fprintf(os.Stderr, "websocket server stopped: %v\n", err)
		}
	}()

	pool := webserver.NewPool(4)
	defer pool.Shutdown()

	fmt.Println("serving on http://127.0.0.1:7878 (websocket echo on :7879/echo)")
	server := webserver.NewServer(pool)
	if err := server.Serve(l); err != nil {
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
	}
}
