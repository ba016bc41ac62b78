package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	apierrors "github.com/pribylovaa/go-admin-gateway/internal/errors"
)

type newsRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	NewsLink string `json:"news_link"`
	Active   bool   `json:"active"`
}

func (in newsRequest) toInput() clients.NewsInput {
	return clients.NewsInput{
		Title:    in.Title,
		ImageURL: in.ImageURL,
		NewsLink: in.NewsLink,
		Active:   in.Active,
	}
}

func newsID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.Clients.News.List(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	id, err := newsID(r)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	n, err := h.Clients.News.Get(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	var in newsRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	n, err := h.Clients.News.Create(r.Context(), in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, n)
}

func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := newsID(r)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in newsRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	n, err := h.Clients.News.Update(r.Context(), id, in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := newsID(r)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Clients.News.Delete(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
