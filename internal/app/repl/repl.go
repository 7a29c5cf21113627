// Package repl is the terminal chat: one question per line, one reply per
// question, until the user says goodbye or input ends. Each question is
// answered on its own.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"gamestore/gamebot/internal/domain/assistant"
)

const (
	Greeting = "Welcome to the game store! Ask me about our game accounts. Type 'exit' to quit."
	Farewell = "Goodbye!"
	Apology  = "Sorry, I couldn't come up with an answer right now. Please try again."
)

var stopWords = map[string]bool{"exit": true, "quit": true, "bye": true}

func Run(ctx context.Context, in io.Reader, out io.Writer, router assistant.Router) error {
	fmt.Fprintln(out, "Bot: "+Greeting)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Bot: "+Farewell)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if stopWords[strings.ToLower(strings.Trim(line, "!. "))] {
			fmt.Fprintln(out, "Bot: "+Farewell)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		reply, err := router.Answer(ctx, assistant.Question{Text: line})
		text := reply.Text
		if err != nil {
			log.Printf("repl: answer failed: %v", err)
			text = Apology
		}
		fmt.Fprintln(out, "Bot: "+text)
	}
}
