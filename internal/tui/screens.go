package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/primetrade/product-dashboard/internal/core/access"
	"github.com/primetrade/product-dashboard/internal/core/controller"
	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// resolveSession performs the single startup current-user round trip. A
// failure of any class lands on the login screen without a notice: a fresh
// visitor has no cookie and always fails this call.
func (a *App) resolveSession(ctx context.Context) {
	res := controller.NewSessionResolver(a.auth, a.log).Resolve(ctx)
	if res.Status == controller.ResolutionReady {
		a.session = res.Identity
		a.current = ports.Route{Name: ports.RouteCatalog}
		return
	}
	a.current = ports.Route{Name: ports.RouteLogin}
}

func (a *App) setSession(s *domain.Session) {
	a.session = s
}

func (a *App) loginScreen(ctx context.Context) error {
	auth := controller.NewAuth(a.auth, a, a.notify, a.log, a.setSession)

	for {
		fmt.Fprintln(a.out, "\n-- Product Dashboard --")
		fmt.Fprintln(a.out, "[l] log in  [r] register  [q] quit")

		cmd, err := a.prompt("login>")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(cmd) {
		case "l":
			email, err := a.prompt("email")
			if err != nil {
				return err
			}
			password, err := a.prompt("password")
			if err != nil {
				return err
			}
			auth.Login(ctx, email, password)
			if a.next != nil {
				return nil
			}
		case "r":
			var in ports.RegisterInput
			if in.Name, err = a.prompt("name"); err != nil {
				return err
			}
			if in.Email, err = a.prompt("email"); err != nil {
				return err
			}
			if in.Password, err = a.prompt("password"); err != nil {
				return err
			}
			role, err := a.prompt("role (ADMIN/USER)")
			if err != nil {
				return err
			}
			in.Role = domain.Role(strings.ToUpper(strings.TrimSpace(role)))
			auth.Register(ctx, in)
			if a.next != nil {
				return nil
			}
		case "q":
			return errQuit
		}
	}
}

func (a *App) catalogScreen(ctx context.Context) error {
	list := controller.NewProductList(a.products, a.session, a, a.notify, a.log)
	defer list.Detach()

	list.Load(ctx)
	if a.next != nil {
		return nil
	}

	for {
		a.renderCatalog(list)

		line, err := a.prompt("catalog>")
		if err != nil {
			return err
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "r":
			list.Load(ctx)
			if a.next != nil {
				return nil
			}
		case "n":
			if !list.CanManage() {
				a.notify.Error("Access Denied", "Only administrators can manage products.")
				continue
			}
			a.Go(ports.Route{Name: ports.RouteForm, Form: &ports.FormParams{Mode: ports.FormCreate}})
			return nil
		case "e":
			if !list.CanManage() {
				a.notify.Error("Access Denied", "Only administrators can manage products.")
				continue
			}
			id, ok := parseID(arg)
			if !ok {
				fmt.Fprintln(a.out, "usage: e <id>")
				continue
			}
			a.Go(ports.Route{Name: ports.RouteForm, Form: &ports.FormParams{Mode: ports.FormEdit, ProductID: id}})
			return nil
		case "d":
			if !list.CanManage() {
				a.notify.Error("Access Denied", "Only administrators can manage products.")
				continue
			}
			id, ok := parseID(arg)
			if !ok {
				fmt.Fprintln(a.out, "usage: d <id>")
				continue
			}
			list.Delete(ctx, id)
		case "a":
			if !access.CanViewAdmin(a.session) {
				a.notify.Error("Access Denied", "You do not have permission to access the Admin Panel.")
				continue
			}
			a.Go(ports.Route{Name: ports.RouteAdmin})
			return nil
		case "o":
			auth := controller.NewAuth(a.auth, a, a.notify, a.log, a.setSession)
			auth.Logout(ctx)
			if a.next != nil {
				a.session = nil
				return nil
			}
		case "q":
			return errQuit
		}
	}
}

func (a *App) renderCatalog(list *controller.ProductList) {
	fmt.Fprintln(a.out, "\n-- Catalog --")

	switch list.State() {
	case controller.ListEmpty:
		fmt.Fprintln(a.out, "No products found.")
	case controller.ListPopulated:
		if list.FromCache() {
			fmt.Fprintln(a.out, "(served from cache)")
		}
		for _, p := range list.Products() {
			fmt.Fprintf(a.out, "%4d  %-24s %10s  stock %-4d %s\n",
				p.ID, p.Name, p.Price, p.InStock, p.Status)
		}
	}

	if list.CanManage() {
		fmt.Fprintln(a.out, "[n] new  [e <id>] edit  [d <id>] delete  [a] admin  [r] reload  [o] logout  [q] quit")
	} else {
		fmt.Fprintln(a.out, "[r] reload  [o] logout  [q] quit")
	}
}

func (a *App) formScreen(ctx context.Context, params *ports.FormParams) error {
	if params == nil {
		params = &ports.FormParams{Mode: ports.FormCreate}
	}

	form := controller.NewProductForm(a.products, a, a.notify, a.log, *params, a.successPause)
	form.Load(ctx)
	if a.next != nil {
		return nil
	}

	for {
		draft := form.Draft()
		if form.Mode() == ports.FormEdit {
			fmt.Fprintf(a.out, "\n-- Edit Product %d --\n", draft.ID)
		} else {
			fmt.Fprintln(a.out, "\n-- New Product --")
		}
		fmt.Fprintln(a.out, "Press enter to keep the shown value.")

		if v, err := a.prompt(fmt.Sprintf("name [%s]", draft.Name)); err != nil {
			return err
		} else if v != "" {
			form.SetName(v)
		}
		if v, err := a.prompt(fmt.Sprintf("description [%s]", draft.Description)); err != nil {
			return err
		} else if v != "" {
			form.SetDescription(v)
		}
		if v, err := a.prompt(fmt.Sprintf("price [%s]", draft.Price)); err != nil {
			return err
		} else if v != "" {
			form.SetPrice(v)
		}
		if v, err := a.prompt(fmt.Sprintf("in stock [%d]", draft.InStock)); err != nil {
			return err
		} else if v != "" {
			form.SetInStock(v)
		}
		if v, err := a.prompt(fmt.Sprintf("status [%s]", draft.Status)); err != nil {
			return err
		} else if v != "" {
			form.SetStatus(v)
		}

		answer, err := a.prompt("[s] save  [e] edit again  [c] cancel")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(answer) {
		case "s":
			form.Submit(ctx)
			if a.next != nil {
				return nil
			}
			// Submit failed and the controller stayed put; loop so the
			// values remain editable.
		case "c":
			form.Cancel()
			return nil
		}
	}
}

func (a *App) adminScreen(ctx context.Context) error {
	admin := controller.NewAdminUsers(a.accounts, a.session, a, a.notify, a.log)
	admin.Load(ctx)
	if a.next != nil {
		return nil
	}

	for {
		fmt.Fprintln(a.out, "\n-- Admin Panel --")
		if admin.State() == controller.AdminErrored {
			fmt.Fprintln(a.out, "User list unavailable.")
		} else {
			for _, acct := range admin.Visible() {
				fmt.Fprintf(a.out, "%4d  %-24s %-32s %s\n", acct.ID, acct.Name, acct.Email, acct.Role)
			}
			fmt.Fprintf(a.out, "page %d/%d (%d users)\n", admin.Page(), admin.TotalPages(), admin.Total())
		}
		fmt.Fprintln(a.out, "[n] next page  [p] previous page  [d <id>] delete  [r] reload  [b] back  [q] quit")

		line, err := a.prompt("admin>")
		if err != nil {
			return err
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "n":
			admin.SetPage(admin.Page() + 1)
		case "p":
			admin.SetPage(admin.Page() - 1)
		case "d":
			id, ok := parseID(arg)
			if !ok {
				fmt.Fprintln(a.out, "usage: d <id>")
				continue
			}
			admin.DeleteAccount(ctx, id)
		case "r":
			admin.Load(ctx)
			if a.next != nil {
				return nil
			}
		case "b":
			a.Go(ports.Route{Name: ports.RouteCatalog})
			return nil
		case "q":
			return errQuit
		}
	}
}

func splitCommand(line string) (cmd, arg string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[1]
}

func parseID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
