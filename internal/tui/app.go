// Package tui is the console front end. It owns no business rules: every
// screen builds the matching controller, forwards keystrokes to it, and
// renders whatever state the controller ends up in.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// errQuit unwinds the run loop on an explicit quit command or closed input.
var errQuit = errors.New("quit")

// App drives the screens. It is the ports.Navigator implementation the
// controllers steer: a controller calling Go just records the next route,
// and the run loop switches screens once the current handler returns.
type App struct {
	products ports.ProductGateway
	auth     ports.AuthGateway
	accounts ports.AccountGateway

	in     *bufio.Scanner
	out    io.Writer
	notify *consoleNotifier
	log    zerolog.Logger

	successPause time.Duration

	session *domain.Session
	current ports.Route
	next    *ports.Route
}

func New(products ports.ProductGateway, auth ports.AuthGateway, accounts ports.AccountGateway,
	in io.Reader, out io.Writer, successPause time.Duration, log zerolog.Logger) *App {
	scanner := bufio.NewScanner(in)
	return &App{
		products:     products,
		auth:         auth,
		accounts:     accounts,
		in:           scanner,
		out:          out,
		notify:       newConsoleNotifier(scanner, out),
		log:          log,
		successPause: successPause,
	}
}

// Go satisfies ports.Navigator.
func (a *App) Go(r ports.Route) {
	a.next = &r
}

// Run resolves the session once and then loops over screens until the user
// quits or input closes.
func (a *App) Run(ctx context.Context) error {
	a.resolveSession(ctx)

	for {
		var err error
		switch a.current.Name {
		case ports.RouteLogin:
			err = a.loginScreen(ctx)
		case ports.RouteCatalog:
			err = a.catalogScreen(ctx)
		case ports.RouteForm:
			err = a.formScreen(ctx, a.current.Form)
		case ports.RouteAdmin:
			err = a.adminScreen(ctx)
		default:
			return fmt.Errorf("tui: unknown route %q", a.current.Name)
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if a.next == nil {
			return nil
		}
		a.current = *a.next
		a.next = nil
	}
}

// prompt reads one input line. A closed stream quits the app.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", errQuit
	}
	return a.in.Text(), nil
}
