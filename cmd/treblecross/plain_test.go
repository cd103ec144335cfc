package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/vovakirdan/treblecross/internal/games/treblecross"
)

func plainOptions() treblecross.Options {
	return treblecross.Options{
		BoardSize: 5,
		SymbolA:   'X',
		SymbolB:   'O',
		SavePath:  "treblecross.save",
	}
}

func TestRunPlainGameScriptedMatch(t *testing.T) {
	// Every prompt reads from the same buffered stream, so a piped
	// script answers the setup questions and then feeds the moves.
	script := "5\n1\n0\n3\n1\n4\n2\n"
	var out strings.Builder

	if err := runPlainGame(strings.NewReader(script), &out, plainOptions(), nil); err != nil {
		t.Fatalf("runPlainGame: %v", err)
	}
	if strings.Contains(out.String(), "Game abandoned.") {
		t.Fatalf("scripted moves were lost before the move prompt:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Player 1 (X) wins!") {
		t.Fatalf("expected a first-player win, got:\n%s", out.String())
	}
}

func TestRunPlainGameAbandonedOnEOF(t *testing.T) {
	var out strings.Builder

	if err := runPlainGame(strings.NewReader("5\n1\n"), &out, plainOptions(), nil); err != nil {
		t.Fatalf("runPlainGame: %v", err)
	}
	if !strings.Contains(out.String(), "Game abandoned.") {
		t.Fatalf("expected abandonment on EOF, got:\n%s", out.String())
	}
}

func TestAskIntLeavesStreamForNextReader(t *testing.T) {
	rd := bufio.NewReader(strings.NewReader("7\n4\n"))
	var out strings.Builder

	n, err := askInt(rd, &out, "size: ", 5, 3)
	if err != nil {
		t.Fatalf("askInt: %v", err)
	}
	if n != 7 {
		t.Fatalf("askInt = %d, want 7", n)
	}

	rest, err := rd.ReadString('\n')
	if err != nil {
		t.Fatalf("reading leftover input: %v", err)
	}
	if rest != "4\n" {
		t.Fatalf("leftover input = %q, want %q", rest, "4\n")
	}
}

func TestAskIntDefaultAndRetry(t *testing.T) {
	rd := bufio.NewReader(strings.NewReader("\nabc\n2\n9\n"))
	var out strings.Builder

	n, err := askInt(rd, &out, "size: ", 5, 3)
	if err != nil {
		t.Fatalf("askInt: %v", err)
	}
	if n != 5 {
		t.Fatalf("empty input = %d, want default 5", n)
	}

	n, err = askInt(rd, &out, "size: ", 5, 3)
	if err != nil {
		t.Fatalf("askInt: %v", err)
	}
	if n != 9 {
		t.Fatalf("after retries = %d, want 9", n)
	}
	if got := strings.Count(out.String(), "at least 3"); got != 2 {
		t.Fatalf("expected two retry messages, got %d in:\n%s", got, out.String())
	}
}
