// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kinora/internal/platform/constants"
	requestutil "github.com/taibuivan/kinora/internal/platform/request"
	"github.com/taibuivan/kinora/internal/platform/respond"
	"github.com/taibuivan/kinora/pkg/convert"
	"github.com/taibuivan/kinora/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listFilms)
	router.Post("/", handler.createFilm)
	router.Put("/", handler.updateFilm)

	// Fixed segments are registered before the {id} wildcard so chi never
	// treats "popular" or "search" as a film ID.
	router.Get("/popular", handler.popularFilms)
	router.Get("/search", handler.searchFilms)
	router.Get("/common", handler.commonFilms)
	router.Get("/director/{directorId}", handler.filmsByDirector)

	router.Get("/{id}", handler.getFilm)
	router.Delete("/{id}", handler.deleteFilm)
	router.Put("/{id}/like/{userId}", handler.addLike)
	router.Delete("/{id}/like/{userId}", handler.removeLike)

	return router
}

// # CRUD

func (handler *Handler) listFilms(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.ListFilms(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) getFilm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	f, err := handler.service.GetFilm(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, f)
}

func (handler *Handler) createFilm(writer http.ResponseWriter, request *http.Request) {
	var payload Film
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateFilm(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateFilm(writer http.ResponseWriter, request *http.Request) {
	var payload Film
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateFilm(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteFilm(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFilm(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Likes

func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeLike(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Discovery

func (handler *Handler) popularFilms(writer http.ResponseWriter, request *http.Request) {
	count := convert.ToIntD(request.URL.Query().Get("count"), constants.DefaultPopularCount)
	genreID := query.OptionalInt(request, "genreId")
	year := query.OptionalInt(request, "year")

	films, err := handler.service.Popular(request.Context(), count, genreID, year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) searchFilms(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.Search(
		request.Context(),
		request.URL.Query().Get("query"),
		query.StringSlice(request.URL.Query().Get("by")),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) commonFilms(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredIntQuery(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	friendID, err := requestutil.RequiredIntQuery(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	films, err := handler.service.CommonFilms(request.Context(), userID, friendID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) filmsByDirector(writer http.ResponseWriter, request *http.Request) {
	directorID, err := requestutil.IntParam(request, "directorId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sortBy := request.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = SortByLikes
	}

	films, err := handler.service.FilmsByDirector(request.Context(), directorID, sortBy)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}
