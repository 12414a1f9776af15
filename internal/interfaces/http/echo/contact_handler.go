package echo

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	app "github.com/chrisospina/contact-manager/internal/application/contact"
)

const dateLayout = "2006-01-02"

type ContactHandler struct {
	save   app.SaveContact
	remove app.DeleteContact
	get    app.GetContact
	list   app.ListContacts
}

type emailPayload struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

type addressPayload struct {
	Type    string `json:"type"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type saveContactRequest struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	DOB       string           `json:"dob"`
	Emails    []emailPayload   `json:"emails"`
	Addresses []addressPayload `json:"addresses"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewContactHandler(save app.SaveContact, remove app.DeleteContact, get app.GetContact, list app.ListContacts) *ContactHandler {
	return &ContactHandler{save: save, remove: remove, get: get, list: list}
}

func (h *ContactHandler) ListContacts(c echo.Context) error {
	out, err := h.list.Execute(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list contacts",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ContactHandler) GetContact(c echo.Context) error {
	out, err := h.get.Execute(c.Request().Context(), app.GetContactInput{
		ContactID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidContactID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_contact_id",
				Message: "id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrContactNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "contact not found",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get contact",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ContactHandler) SaveContact(c echo.Context) error {
	var req saveContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_dob",
				Message: "dob must be formatted as YYYY-MM-DD",
			}})
		}
		dob = &parsed
	}

	emails := make([]app.SaveEmailInput, 0, len(req.Emails))
	for _, email := range req.Emails {
		emails = append(emails, app.SaveEmailInput{Type: email.Type, Email: email.Email})
	}

	addresses := make([]app.SaveAddressInput, 0, len(req.Addresses))
	for _, address := range req.Addresses {
		addresses = append(addresses, app.SaveAddressInput{
			Type:    address.Type,
			Street1: address.Street1,
			Street2: address.Street2,
			City:    address.City,
			State:   address.State,
			Zip:     address.Zip,
		})
	}

	out, err := h.save.Execute(c.Request().Context(), app.SaveContactInput{
		ContactID: req.ID,
		Title:     req.Title,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       dob,
		Emails:    emails,
		Addresses: addresses,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidContactID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_contact_id",
				Message: "id must be empty or a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrInvalidContact) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_contact",
				Message: "first_name and last_name are required",
			}})
		}
		if errors.Is(err, app.ErrContactNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "contact not found",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to save contact",
		}})
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, apiResponse{Data: out})
}

func (h *ContactHandler) DeleteContact(c echo.Context) error {
	err := h.remove.Execute(c.Request().Context(), app.DeleteContactInput{
		ContactID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidContactID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_contact_id",
				Message: "id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrContactNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "contact not found",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to delete contact",
		}})
	}

	return c.NoContent(http.StatusNoContent)
}
