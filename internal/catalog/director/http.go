package director

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/kinora/internal/platform/request"
	"github.com/taibuivan/kinora/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listDirectors)
	router.Post("/", handler.createDirector)
	router.Put("/", handler.updateDirector)
	router.Get("/{id}", handler.getDirector)
	router.Delete("/{id}", handler.deleteDirector)
	return router
}

func (handler *Handler) listDirectors(writer http.ResponseWriter, request *http.Request) {
	directors, err := handler.service.ListDirectors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, directors)
}

func (handler *Handler) getDirector(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	d, err := handler.service.GetDirector(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, d)
}

func (handler *Handler) createDirector(writer http.ResponseWriter, request *http.Request) {
	var payload Director
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateDirector(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateDirector(writer http.ResponseWriter, request *http.Request) {
	var payload Director
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateDirector(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteDirector(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDirector(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
