// ABOUTME: Interactive comment board session: menu loop and the four operations.
// ABOUTME: Each operation re-reads the store; update and delete select by listed position.

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/harper/commentbox/internal/board"
	"github.com/harper/commentbox/internal/models"
	"github.com/harper/commentbox/internal/ui"
)

// MenuItems are the main menu entries, in dispatch order.
var MenuItems = []string{
	"Create a comment",
	"View all comments",
	"Update a comment",
	"Delete a comment",
}

const invalidSelection = "Invalid selection."

// App runs one interactive session against a board.
type App struct {
	board   *board.Board
	console *ui.Console
	logger  *log.Logger
}

func New(b *board.Board, c *ui.Console, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{board: b, console: c, logger: logger}
}

// Run prepares the store index, shows the current comments, then loops on the
// menu until the user exits. Store errors end the session.
func (a *App) Run(ctx context.Context) error {
	if err := a.board.Migrate(ctx); err != nil {
		return err
	}
	if _, err := a.List(ctx, false); err != nil {
		return err
	}

	ops := []func(context.Context) error{a.Create, a.View, a.Update, a.Delete}
	for {
		choice, err := a.console.Menu.Choose()
		if errors.Is(err, ui.ErrQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("show menu: %w", err)
		}

		a.logger.Debug("menu selection", "item", MenuItems[choice])
		err = ops[choice](ctx)
		switch {
		case errors.Is(err, ui.ErrAborted):
			fmt.Fprintln(a.console.Out, "Cancelled.")
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// Create asks for title, body and an optional name, then stores the comment.
func (a *App) Create(ctx context.Context) error {
	p := a.console.Prompter

	title, err := p.Prompt("Title: ", ui.NotEmpty)
	if err != nil {
		return err
	}
	body, err := p.Prompt("Body: ", ui.NotEmpty)
	if err != nil {
		return err
	}
	name, err := p.Prompt("Name: ", nil)
	if err != nil {
		return err
	}

	if _, err := a.board.Create(ctx, title, body, name); err != nil {
		return err
	}

	fmt.Fprintln(a.console.Out, ui.Success("Comment created."))
	return p.Pause()
}

// View lists every comment and waits for enter.
func (a *App) View(ctx context.Context) error {
	_, err := a.List(ctx, true)
	return err
}

// List clears the screen and prints all comments numbered from zero.
// The returned slice is the one the printed numbers refer to.
func (a *App) List(ctx context.Context, wait bool) ([]*models.Comment, error) {
	a.console.Clear()

	comments, err := a.board.List(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(a.console.Out, ui.FormatCommentList(comments))

	if wait {
		if err := a.console.Prompter.Pause(); err != nil {
			return nil, err
		}
	}
	return comments, nil
}

// choose lists the comments and reads a display index. The index is not
// range-checked here.
func (a *App) choose(ctx context.Context, label string) ([]*models.Comment, int, error) {
	listed, err := a.List(ctx, false)
	if err != nil {
		return nil, 0, err
	}

	answer, err := a.console.Prompter.Prompt(label, ui.IsNumber)
	if err != nil {
		return nil, 0, err
	}

	index, err := strconv.Atoi(answer)
	if err != nil {
		// Digits only, so this is an overflow: no listing is that long.
		index = -1
	}
	return listed, index, nil
}

// Update replaces the body of the comment at the chosen position.
func (a *App) Update(ctx context.Context) error {
	p := a.console.Prompter

	listed, index, err := a.choose(ctx, "Select a comment to update: ")
	if err != nil {
		return err
	}

	target, err := board.Select(listed, index)
	if errors.Is(err, board.ErrNotFound) {
		fmt.Fprintln(a.console.Out, ui.Error(invalidSelection))
		return p.Pause()
	}

	body, err := p.Edit("\nBody: ", target.Body, ui.NotEmpty)
	if err != nil {
		return err
	}
	if _, err := a.board.Update(ctx, listed, index, body); err != nil {
		return err
	}

	fmt.Fprintln(a.console.Out, ui.Success("Comment updated."))
	return p.Pause()
}

// Delete removes the comment at the chosen position.
func (a *App) Delete(ctx context.Context) error {
	p := a.console.Prompter

	listed, index, err := a.choose(ctx, "Select a comment to delete: ")
	if err != nil {
		return err
	}

	_, err = a.board.Delete(ctx, listed, index)
	if errors.Is(err, board.ErrNotFound) {
		fmt.Fprintln(a.console.Out, ui.Error(invalidSelection))
		return p.Pause()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.console.Out, ui.Success("Comment deleted."))
	return p.Pause()
}
