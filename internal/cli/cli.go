// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/app"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/models"
)

const helpText = `Commands:
  /name NAME        set the name messages are sent under
  /password [PW]    set the channel password (hidden prompt without PW)
  /channel NAME     switch channel
  /interval MS      set the polling interval in milliseconds
  /help             show this help
  /quit             exit
Any other line is sent to the channel.
`

// CLI is the line-mode chat loop. The engine must have been built with the
// console as its view and prompter.
type CLI struct {
	console   *Console
	engine    service.SyncEngine
	session   *session.Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	name     string
	password string
}

func New(console *Console, engine service.SyncEngine, sess *session.Session, info models.AppBuildInfo, log *logger.Logger) *CLI {
	return &CLI{
		console:   console,
		engine:    engine,
		session:   sess,
		buildInfo: info,
		logger:    log,
		name:      sess.RememberedName(),
		password:  sess.RememberedPassword(),
	}
}

// Run reads commands until /quit, end of input or ctx is done.
func (c *CLI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer c.engine.Cleanup()

	c.console.printf("chat %s, channel #%s. Type /help for commands.\n", c.buildInfo.BuildVersion(), c.session.Channel())
	if c.name == "" {
		c.console.printf("Set your name with /name NAME before sending.\n")
	}

	go func() {
		if err := c.engine.RestartFetchInterval(ctx); err != nil && ctx.Err() == nil {
			c.report(err)
		}
	}()

	lines := make(chan input)
	readErr := make(chan error, 1)
	go c.readLoop(ctx, lines, readErr)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case in := <-lines:
			if in.hiddenPassword {
				c.setPassword(in.line)
				continue
			}
			if quit := c.handle(ctx, in.line); quit {
				return nil
			}
		}
	}
}

// input is one line read from the console. hiddenPassword marks the answer
// to a bare /password, read without echo.
type input struct {
	line           string
	hiddenPassword bool
}

// readLoop owns the console input; nothing else reads from it.
func (c *CLI) readLoop(ctx context.Context, lines chan<- input, errs chan<- error) {
	for {
		line, err := c.console.in.ReadLine()
		if err != nil {
			errs <- err
			return
		}
		if c.console.answer(line) {
			continue
		}

		in := input{line: line}
		if strings.TrimSpace(line) == "/password" {
			if in.line, err = c.console.in.ReadPassword(hiddenPasswordPrompt); err != nil {
				errs <- err
				return
			}
			in.hiddenPassword = true
		}

		select {
		case lines <- in:
		case <-ctx.Done():
			return
		}
	}
}

// handle runs one input line and reports whether the loop should stop.
func (c *CLI) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		c.send(ctx, line)
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		c.console.printf("%s", helpText)
	case "/name":
		c.name = arg
	case "/password":
		c.setPassword(arg)
	case "/channel":
		c.updateSettings(ctx, c.session.PollInterval(), arg)
	case "/interval":
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || ms <= 0 {
			c.console.printf("%s\n", app.MsgInvalidInterval)
			return false
		}
		c.updateSettings(ctx, time.Duration(ms)*time.Millisecond, c.session.Channel())
	default:
		c.console.printf("unknown command %s, try /help\n", cmd)
	}
	return false
}

func (c *CLI) send(ctx context.Context, text string) {
	if c.name == "" {
		c.console.printf("Set your name with /name NAME before sending.\n")
		return
	}

	err := c.engine.SendMessage(ctx, models.Draft{
		Name:     c.name,
		Password: c.password,
		Text:     text,
	})
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		c.console.printf("%s\n", app.MsgAuthRequired)
	case errors.Is(err, service.ErrSendInProgress):
		c.logger.Debug().Msg("send skipped, another one is running")
	}
}

func (c *CLI) setPassword(password string) {
	c.password = password
	c.engine.HandlePasswordChange(password)
}

func (c *CLI) updateSettings(ctx context.Context, interval time.Duration, channel string) {
	if channel == "" {
		channel = models.DefaultChannel
	}
	if err := c.engine.UpdateSettings(ctx, interval, channel); err != nil {
		c.report(err)
		return
	}
	c.console.printf("%s\n", app.MsgSettingsSaved)
}

func (c *CLI) report(err error) {
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		c.console.printf("%s\n", app.MsgAuthRequired)
	case errors.Is(err, service.ErrAttemptsExhausted), errors.Is(err, context.Canceled):
		c.console.printf("%s\n", app.MsgAuthAborted)
	default:
		c.console.printf("%s\n", app.HumanizeError(err))
	}
}
