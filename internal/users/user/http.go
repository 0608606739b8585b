// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

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

	router.Get("/", handler.listUsers)
	router.Post("/", handler.createUser)
	router.Put("/", handler.updateUser)
	router.Get("/{id}", handler.getUser)
	router.Delete("/{id}", handler.deleteUser)

	router.Put("/{id}/friends/{friendId}", handler.addFriend)
	router.Delete("/{id}/friends/{friendId}", handler.removeFriend)
	router.Get("/{id}/friends", handler.listFriends)
	router.Get("/{id}/friends/common/{otherId}", handler.commonFriends)

	router.Get("/{id}/recommendations", handler.recommendations)
	router.Get("/{id}/feed", handler.feed)

	return router
}

// # Profiles

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	u, err := handler.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, u)
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var payload User
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateUser(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	var payload User
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateUser(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteUser(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Friendships

func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := userPairParams(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := userPairParams(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listFriends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.ListFriends(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, friends)
}

func (handler *Handler) commonFriends(writer http.ResponseWriter, request *http.Request) {
	userID, otherID, err := userPairParams(request, "otherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.CommonFriends(request.Context(), userID, otherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, friends)
}

// # Cross-Domain Views

func (handler *Handler) recommendations(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	films, err := handler.service.Recommendations(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) feed(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	events, err := handler.service.Feed(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

// userPairParams extracts the {id} parameter plus a second user ID parameter.
func userPairParams(request *http.Request, secondName string) (int, int, error) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}
	secondID, err := requestutil.IntParam(request, secondName)
	if err != nil {
		return 0, 0, err
	}
	return userID, secondID, nil
}
