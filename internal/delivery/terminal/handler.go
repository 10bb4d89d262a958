// Package terminal is a line based front end for the triage session.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/triage-assistant/internal/service"
)

// errQuit stops the read loop without reporting an error.
var errQuit = errors.New("quit")

// Options tunes the terminal front end.
type Options struct {
	ReportFormat string // default /summary format
	Color        bool   // emit ANSI colours
	Intake       bool   // ask the patient name and age before starting
}

type Handler struct {
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	session *service.Session
	parser  *service.AnswerParser
	matcher *service.OptionMatcher
	palette palette
	format  string
	intake  *intake
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	session *service.Session,
	opts Options,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	matcher := service.NewOptionMatcher()
	h := &Handler{
		in:      in,
		out:     out,
		logger:  logger,
		session: session,
		parser:  service.NewAnswerParser(matcher),
		matcher: matcher,
		palette: newPalette(opts.Color),
		format:  opts.ReportFormat,
	}
	if opts.Intake {
		h.intake = newIntake()
	}
	return h
}

// Run reads input lines until EOF, /quit or context cancellation.
// On cancellation Run returns at once, but the reader goroutine only exits once
// the input yields its next line, EOF or error. Callers that own the input
// should close it after Run returns.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started", zap.String("session_id", h.session.ID()))
	defer h.logger.Info("terminal handler stopped", zap.String("session_id", h.session.ID()))

	done := make(chan struct{})
	defer close(done)

	lines, readErr := h.readLines(done)

	h.send(h.msgs().welcome)
	if h.intake != nil {
		h.send(h.intake.prompt(h.msgs()))
	} else {
		h.send(h.renderTargets(""))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if err := h.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// readLines scans h.in on its own goroutine. The lines channel is closed on EOF,
// after which readErr yields the scan error, if any. A Scan blocked in Read is
// not interrupted by done; the goroutine returns on the next line it gets.
func (h *Handler) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (h *Handler) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)

	cmd, isCommand := decodeCommand(line)
	if h.intake != nil && !isCommand {
		h.handleIntake(line)
		return nil
	}

	if !isCommand {
		if line == "" {
			cmd = command{Name: cmdNext, Raw: line}
		} else {
			return h.withErrorHandling(h.answerHandler(line))(ctx, command{Raw: line})
		}
	}

	h.logger.Debug("command received",
		zap.String("session_id", h.session.ID()),
		zap.String("command", cmd.encode()),
	)

	switch cmd.Name {
	case cmdHelp:
		h.send(h.msgs().help)

	case cmdTargets:
		return h.withErrorHandling(h.targetsHandler)(ctx, cmd)

	case cmdStart:
		return h.withErrorHandling(h.startHandler)(ctx, cmd)

	case cmdNext:
		return h.withErrorHandling(h.nextHandler)(ctx, cmd)

	case cmdBack:
		return h.withErrorHandling(h.backHandler)(ctx, cmd)

	case cmdReset:
		return h.withErrorHandling(h.resetHandler)(ctx, cmd)

	case cmdStatus:
		h.send(h.renderStatus())

	case cmdAssessments:
		h.send(h.renderAssessments())

	case cmdRemove:
		return h.withErrorHandling(h.removeHandler)(ctx, cmd)

	case cmdClear:
		h.session.Clear()
		h.send(h.palette.ok.Sprint(h.msgs().cleared))

	case cmdSummary:
		return h.withErrorHandling(h.summaryHandler)(ctx, cmd)

	case cmdExport:
		return h.withErrorHandling(h.exportHandler)(ctx, cmd)

	case cmdLang:
		return h.withErrorHandling(h.langHandler)(ctx, cmd)

	case cmdQuit:
		h.send(h.msgs().bye)
		return errQuit

	default:
		h.sendError(h.msgs().unknownCommand)
	}

	return nil
}

func (h *Handler) msgs() messages {
	return msgs(h.session.Locale())
}

func (h *Handler) sendError(text string) {
	h.send(h.palette.err.Sprint(text))
}

func (h *Handler) send(text string) {
	if text == "" {
		return
	}
	if _, err := fmt.Fprintln(h.out, text); err != nil {
		h.logger.Error("failed to write terminal output",
			zap.Error(err),
		)
	}
}
