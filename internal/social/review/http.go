// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

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

	router.Get("/", handler.listReviews)
	router.Post("/", handler.createReview)
	router.Put("/", handler.updateReview)
	router.Get("/{id}", handler.getReview)
	router.Delete("/{id}", handler.deleteReview)

	router.Put("/{id}/like/{userId}", handler.vote(true, false))
	router.Put("/{id}/dislike/{userId}", handler.vote(false, false))
	router.Delete("/{id}/like/{userId}", handler.vote(true, true))
	router.Delete("/{id}/dislike/{userId}", handler.vote(false, true))

	return router
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	filmID := query.OptionalInt(request, "filmId")
	count := convert.ToIntD(request.URL.Query().Get("count"), constants.DefaultReviewCount)

	reviews, err := handler.service.ListReviews(request.Context(), filmID, count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	r, err := handler.service.GetReview(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, r)
}

func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	var payload Review
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateReview(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	var payload Review
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateReview(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReview(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// vote builds a handler for one corner of the like/dislike × set/remove grid.
func (handler *Handler) vote(isUseful, remove bool) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		reviewID, err := requestutil.IntParam(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		userID, err := requestutil.IntParam(request, "userId")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if remove {
			err = handler.service.RemoveVote(request.Context(), reviewID, userID, isUseful)
		} else {
			err = handler.service.AddVote(request.Context(), reviewID, userID, isUseful)
		}
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}
