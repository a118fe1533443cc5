// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/etnoflora/internal/platform/request"
	"github.com/taibuivan/etnoflora/internal/platform/respond"
	"github.com/taibuivan/etnoflora/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the reference routes: public submission and search, plus
// the curation endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Submission
	router.Post("/", handler.submit)

	// Curation
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Patch("/{id}/status", handler.setStatus)
	router.Delete("/{id}", handler.delete)

	return router
}

// SearchRoutes returns the public, approved-only search routes.
func (handler *Handler) SearchRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	return router
}

// MetaRoutes returns the fixed form palettes (community types, states).
func (handler *Handler) MetaRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/community-types", handler.listCommunityTypes)
	router.Get("/states", handler.listStates)
	return router
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input map[string]any
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input map[string]any
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.SetStatus(request.Context(), requestutil.ID(request, "id"), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := SearchFilter{
		Community:    query.Get("community"),
		Plant:        query.Get("plant"),
		State:        query.Get("state"),
		Municipality: query.Get("municipality"),
	}

	result, err := handler.service.Search(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, result.Items, result.Meta)
}

func (handler *Handler) listCommunityTypes(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, CommunityTypes)
}

func (handler *Handler) listStates(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, StateNames())
}
