package ports

// RouteName identifies an in-app view.
type RouteName string

const (
	RouteCatalog RouteName = "catalog"
	RouteLogin   RouteName = "login"
	RouteAdmin   RouteName = "admin"
	RouteForm    RouteName = "product-form"
)

// FormMode selects the mutation form's behavior.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// FormParams is the typed input to the mutation view. The edit target is an
// explicit parameter of the navigation, not ambient history state.
type FormParams struct {
	Mode      FormMode
	ProductID int
}

// Route is a navigation target. Form is set only for RouteForm.
type Route struct {
	Name RouteName
	Form *FormParams
}

// Navigator switches the active view. Controllers call it to force
// navigation (session expiry, permission denial, post-submit return).
type Navigator interface {
	Go(r Route)
}

// Notifier presents user-visible notices. Confirm blocks until the user
// answers. Implementations must be safe for use from multiple goroutines:
// the optimistic-delete failure path reports from a background call.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
	Confirm(title, message string) bool
}
