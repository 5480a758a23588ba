package rest

import (
	"context"
	"net/http"

	"eventScout/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SocialHandler struct {
		validate      *validator.Validate
		socialService SocialWriteService
	}

	SocialWriteService interface {
		SetRSVP(ctx context.Context, userID uint, eventID, eventName, status string) error
		ListRSVPs(ctx context.Context, userID uint) ([]domain.UserEvent, error)
		AddFriend(ctx context.Context, userID, friendID uint) error
	}

	RSVPRequest struct {
		EventID   string `json:"event_id" validate:"required"`
		EventName string `json:"event_name"`
		Status    string `json:"status" validate:"required,oneof=going interested declined"`
	}

	AddFriendRequest struct {
		FriendID uint `json:"friend_id" validate:"required"`
	}
)

func NewSocialHandler(svc SocialWriteService) *SocialHandler {
	return &SocialHandler{
		validate:      validator.New(),
		socialService: svc,
	}
}

func (h *SocialHandler) SetRSVP(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RSVPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.socialService.SetRSVP(c.Request().Context(), userID, req.EventID, req.EventName, req.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("rsvp recorded"))
}

func (h *SocialHandler) ListRSVPs(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	events, err := h.socialService.ListRSVPs(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

func (h *SocialHandler) AddFriend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req AddFriendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.socialService.AddFriend(c.Request().Context(), userID, req.FriendID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("friend added"))
}
