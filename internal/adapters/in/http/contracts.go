package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/errs"
)

// Actor headers set by the upstream auth layer.
const (
	HeaderOrganization = "X-Organization"
	HeaderAdmin        = "X-Admin"
)

// ErrorResponse is the error body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DecisionResponse is the success body of lifecycle decision endpoints.
// Warning is set when the decision was committed but its notification
// could not be delivered.
type DecisionResponse struct {
	Warning string `json:"warning,omitempty"`
}

// CreatedResponse is the success body of order creation.
type CreatedResponse struct {
	ID string `json:"id"`
}

// LineItemPayload is one requested item in a request body.
type LineItemPayload struct {
	Item    string `json:"item"`
	Comment string `json:"comment,omitempty"`
}

// CategoryPayload is one goods category in a request body. Partners on the
// basic plan send a plain number, advanced partners send an item list, so
// the payload accepts either shape.
type CategoryPayload struct {
	Count *int
	Items []LineItemPayload
}

// UnmarshalJSON accepts a bare number or an array of line items.
func (p *CategoryPayload) UnmarshalJSON(data []byte) error {
	var count int
	if err := json.Unmarshal(data, &count); err == nil {
		p.Count = &count
		p.Items = nil
		return nil
	}

	var items []LineItemPayload
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.New("category must be a number or a list of items")
	}

	p.Count = nil
	p.Items = items
	return nil
}

// MarshalJSON renders the shape the payload holds.
func (p CategoryPayload) MarshalJSON() ([]byte, error) {
	if p.Items != nil {
		return json.Marshal(p.Items)
	}
	count := 0
	if p.Count != nil {
		count = *p.Count
	}
	return json.Marshal(count)
}

func (p CategoryPayload) toCategory() (order.Category, error) {
	if p.Items != nil {
		return order.NewItemizedCategory(toLineItems(p.Items))
	}

	count := 0
	if p.Count != nil {
		count = *p.Count
	}
	return order.NewCountCategory(count)
}

func toLineItems(payloads []LineItemPayload) []order.LineItem {
	items := make([]order.LineItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, order.LineItem{Item: p.Item, Comment: p.Comment})
	}
	return items
}

// CreateOrderRequest is the body of POST /api/orders. The ordering mode is
// inferred from the category shapes; mixed shapes are rejected by the
// domain validation.
type CreateOrderRequest struct {
	Organization string            `json:"organization"`
	Produce      CategoryPayload   `json:"produce"`
	Meat         CategoryPayload   `json:"meat"`
	Vito         CategoryPayload   `json:"vito"`
	Dry          CategoryPayload   `json:"dry"`
	RetailRescue []LineItemPayload `json:"retailRescue,omitempty"`
	Comment      string            `json:"comment,omitempty"`
	Pickup       time.Time         `json:"pickup"`
}

func (r CreateOrderRequest) advanced() bool {
	return r.Produce.Items != nil
}

func (r CreateOrderRequest) goods() (order.Goods, error) {
	var goods order.Goods
	for _, c := range []struct {
		src CategoryPayload
		dst *order.Category
	}{
		{r.Produce, &goods.Produce},
		{r.Meat, &goods.Meat},
		{r.Vito, &goods.Vito},
		{r.Dry, &goods.Dry},
	} {
		category, err := c.src.toCategory()
		if err != nil {
			return order.Goods{}, err
		}
		*c.dst = category
	}
	return goods, nil
}

// ModifyOrderRequest is the body of the modify endpoints: a patch where
// absent fields are left untouched. The four categories travel together; a
// patch naming some but not all of them is rejected.
type ModifyOrderRequest struct {
	Produce      *CategoryPayload   `json:"produce,omitempty"`
	Meat         *CategoryPayload   `json:"meat,omitempty"`
	Vito         *CategoryPayload   `json:"vito,omitempty"`
	Dry          *CategoryPayload   `json:"dry,omitempty"`
	RetailRescue *[]LineItemPayload `json:"retailRescue,omitempty"`
	Comment      *string            `json:"comment,omitempty"`
	Pickup       *time.Time         `json:"pickup,omitempty"`
}

func (r ModifyOrderRequest) toChanges() (order.Changes, error) {
	changes := order.Changes{
		Comment: r.Comment,
		Pickup:  r.Pickup,
	}

	categories := []*CategoryPayload{r.Produce, r.Meat, r.Vito, r.Dry}
	present := 0
	for _, c := range categories {
		if c != nil {
			present++
		}
	}

	switch present {
	case 0:
	case len(categories):
		var goods order.Goods
		for i, dst := range []*order.Category{&goods.Produce, &goods.Meat, &goods.Vito, &goods.Dry} {
			category, err := categories[i].toCategory()
			if err != nil {
				return order.Changes{}, err
			}
			*dst = category
		}
		changes.Goods = &goods
	default:
		return order.Changes{}, errs.NewValueIsInvalidError("all four categories must be supplied together")
	}

	if r.RetailRescue != nil {
		items := toLineItems(*r.RetailRescue)
		changes.RetailRescue = &items
	}

	return changes, nil
}

// actorFromRequest builds the caller identity from the auth headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	organization := ctx.Request().Header.Get(HeaderOrganization)
	admin := ctx.Request().Header.Get(HeaderAdmin) == "true"
	return kernel.NewActor(organization, admin)
}

// statusFor maps domain errors to HTTP status codes. Unknown errors are
// internal failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrActionIsForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrSlotIsTaken):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for a failed operation. Internal
// errors keep their details out of the response.
func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
