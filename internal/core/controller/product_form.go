package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// FormState tracks the mutation form through its lifecycle. Loading applies
// only to edit mode (the existing record is re-fetched); Submitting covers
// the create/update call.
type FormState int

const (
	FormIdle FormState = iota
	FormLoading
	FormSubmitting
)

// ProductForm manages the create/edit form. The mode and the edit target
// arrive as explicit typed parameters from the navigation that opened the
// view; they do not survive a restart.
type ProductForm struct {
	products ports.ProductGateway
	nav      ports.Navigator
	notify   ports.Notifier
	log      zerolog.Logger

	mode     ports.FormMode
	targetID int

	state FormState
	draft domain.ProductDraft

	// successPause is how long the success notice stays readable before the
	// view navigates back to the catalog.
	successPause time.Duration
	sleep        func(time.Duration)
}

func NewProductForm(products ports.ProductGateway, nav ports.Navigator, notify ports.Notifier, log zerolog.Logger, params ports.FormParams, successPause time.Duration) *ProductForm {
	return &ProductForm{
		products:     products,
		nav:          nav,
		notify:       notify,
		log:          log,
		mode:         params.Mode,
		targetID:     params.ProductID,
		draft:        domain.NewProductDraft(),
		successPause: successPause,
		sleep:        time.Sleep,
	}
}

// Load prepares the form. In edit mode the entire catalog is re-fetched and
// searched locally; the backend has no single-item read. A missing target
// leaves the blank defaults in place behind a "not found" notice.
func (f *ProductForm) Load(ctx context.Context) {
	if f.mode != ports.FormEdit {
		return
	}

	f.state = FormLoading
	defer func() { f.state = FormIdle }()

	list, err := f.products.ListProducts(ctx)
	if err != nil {
		f.log.Warn().Err(err).Int("product_id", f.targetID).Msg("edit target fetch failed")
		f.notify.Error("Error", "Failed to fetch product data.")
		return
	}

	for _, p := range list.Products {
		if p.ID == f.targetID {
			f.draft = domain.DraftFromProduct(p)
			return
		}
	}
	f.notify.Error("Error", "Product not found.")
}

// Field setters mutate the in-memory draft only.

func (f *ProductForm) SetName(v string)        { f.draft.Name = v }
func (f *ProductForm) SetDescription(v string) { f.draft.Description = v }
func (f *ProductForm) SetPrice(v string)       { f.draft.Price = v }
func (f *ProductForm) SetStatus(v string)      { f.draft.Status = v }

// SetInStock coerces non-numeric input to zero rather than rejecting it.
func (f *ProductForm) SetInStock(raw string) {
	f.draft.InStock = domain.CoerceStock(raw)
}

// Submit sends the draft. Create strips any identifier so the backend
// assigns the real one; update targets the draft's identifier with the full
// body. Success shows a notice naming the product, pauses so it can be read,
// then returns to the catalog; failure keeps the form open for correction,
// except an expired session, which always goes back to login.
func (f *ProductForm) Submit(ctx context.Context) {
	f.state = FormSubmitting
	defer func() { f.state = FormIdle }()

	var (
		result domain.Product
		err    error
	)
	if f.mode == ports.FormEdit {
		result, _, err = f.products.UpdateProduct(ctx, f.draft.ID, f.draft.Product())
	} else {
		payload := f.draft.Product()
		payload.ID = 0
		result, _, err = f.products.CreateProduct(ctx, payload)
	}

	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			f.notify.Error(err.Error(), "Your session has expired. Please log in again.")
			f.nav.Go(ports.Route{Name: ports.RouteLogin})
			return
		}
		f.notify.Error("Error", submitFailureMessage(err))
		return
	}

	if f.mode == ports.FormEdit {
		f.notify.Success("Success", fmt.Sprintf("Product %q updated successfully!", result.Name))
	} else {
		f.notify.Success("Success", fmt.Sprintf("Product %q created successfully!", result.Name))
		f.draft = domain.NewProductDraft()
	}

	f.sleep(f.successPause)
	f.nav.Go(ports.Route{Name: ports.RouteCatalog})
}

func submitFailureMessage(err error) string {
	if re := domain.AsRemote(err); re != nil {
		return re.Error()
	}
	if errors.Is(err, domain.ErrMalformedResponse) {
		return domain.ErrMalformedResponse.Error()
	}
	return "Unknown error"
}

// Cancel discards the draft and returns to the catalog without calling the
// backend.
func (f *ProductForm) Cancel() {
	f.draft = domain.NewProductDraft()
	f.nav.Go(ports.Route{Name: ports.RouteCatalog})
}

func (f *ProductForm) Mode() ports.FormMode       { return f.mode }
func (f *ProductForm) State() FormState           { return f.state }
func (f *ProductForm) Draft() domain.ProductDraft { return f.draft }
