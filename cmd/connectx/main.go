package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connectx/internal/config"
	"github.com/iamasit07/connectx/internal/domain"
	"github.com/iamasit07/connectx/internal/render"
	"github.com/iamasit07/connectx/internal/service/cleanup"
	"github.com/iamasit07/connectx/internal/service/game"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	var (
		jsonOut = flag.Bool("json", false, "print the final board as JSON")
		noColor = flag.Bool("no-color", false, "disable colored discs")
	)
	flag.Parse()

	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	logx.MustSetup(logx.LogConf{
		ServiceName: "connectx",
		Mode:        "console",
		Encoding:    "plain",
		Level:       cfg.LogLevel,
	})
	if envErr != nil {
		logx.Info("[CONFIG] No .env file found, using environment only")
	}
	domain.SetContractChecks(cfg.ContractChecks)

	players, err := cfg.Players()
	logx.Must(errors.Wrap(err, "invalid players"))

	sm := game.NewSessionManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleanup.NewWorker(sm).Start(ctx)

	sessionCfg := game.SessionConfig{
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		InARow:  cfg.InARow,
		Players: players,
		Options: cfg.GameOptions(),
	}

	m := &match{
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		renderer: render.NewText(!*noColor),
	}

	for {
		session, err := sm.CreateSession(sessionCfg)
		logx.Must(errors.Wrap(err, "failed to start game"))

		finished := m.run(session)

		if *jsonOut {
			data, err := render.JSON(session.View())
			logx.Must(errors.Wrap(err, "failed to encode board"))
			fmt.Fprintln(m.out, string(data))
		}

		if !finished || !m.ask("Play again? [y/N] ") {
			return
		}
	}
}

// match drives one session from a line oriented input
type match struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *render.TextRenderer
}

// run plays until the session ends or input runs out. It reports whether the
// session reached a result.
func (m *match) run(session *game.GameSession) bool {
	for {
		view := session.View()
		if err := m.renderer.Render(m.out, view); err != nil {
			logx.Errorf("[GAME] Failed to render board: %v", err)
		}
		if session.IsFinished() {
			return true
		}

		fmt.Fprintf(m.out, "%s, column (1-%d, q to quit): ", view.ActivePlayer.Name(), view.Columns)
		if !m.in.Scan() {
			return false
		}

		line := strings.TrimSpace(m.in.Text())
		if line == "q" || line == "quit" {
			return false
		}

		column, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(m.out, "%q is not a column number\n", line)
			continue
		}

		if _, err := session.Play(column - 1); err != nil {
			switch errors.Cause(err) {
			case domain.ErrColumnFull:
				fmt.Fprintf(m.out, "Column %d is full, pick another one\n", column)
			case game.ErrInvalidColumn:
				fmt.Fprintf(m.out, "There is no column %d\n", column)
			default:
				fmt.Fprintln(m.out, err)
			}
		}
	}
}

func (m *match) ask(prompt string) bool {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(m.in.Text()))
	return answer == "y" || answer == "yes"
}
