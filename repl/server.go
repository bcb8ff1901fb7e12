/*
File    : lox-go/repl/server.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bufio"
	"fmt"
	"net"

	"github.com/akashmaji946/lox-go/eval"
)

// Serve listens on addr (e.g. ":9000") and runs one independent REPL
// session per accepted TCP connection, each with its own Interpreter —
// the same pipeline Run drives over stdin, just fed from a socket.
// Grounded on the teacher's main/main.go server subcommand
// (net.Listen/go handleClient(conn)), generalized from Go-Mix's single
// shared evaluator to one interpreter per connection so concurrent
// clients never see each other's variables.
func Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()

	fmt.Fprintln(conn, "lox-go session; one line at a time, '.exit' to disconnect.")
	interp := eval.New(conn)
	scanner := bufio.NewScanner(conn)

	for scanner.Scan() {
		line := scanner.Text()
		if line == ".exit" {
			return
		}
		if line == "" {
			continue
		}
		runLine(conn, interp, line)
	}
}
