// Subscription HTTP handlers.
//
//   - POST /subscriptions/{channelId}              (toggle subscription)
//   - GET  /subscriptions/subscribed               (channels the caller follows)
//   - GET  /subscriptions/{channelId}/subscribers  (a channel's subscribers)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// SubscriptionService defines the follows-graph operations consumed by HTTP
// handlers.
type SubscriptionService interface {
	// Toggle flips the caller's subscription to a channel; true means
	// subscribed.
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	// Subscribers returns the users subscribed to a channel.
	Subscribers(ctx context.Context, channelID string) ([]domain.User, error)
	// SubscribedChannels returns the channels the caller is subscribed to.
	SubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error)
}

// ToggleSubscription godoc
// @ID          toggleSubscription
// @Summary     Toggle a subscription to a channel
// @Description Subscribes (201) or unsubscribes (200) the caller; subscribing to one's own channel is rejected.
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
//
// @Param       channelId  path  string  true  "Channel (user) ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse "Unsubscribed"
// @Success     201  {object}  handlers.APIResponse "Subscribed"
// @Failure     400  {object}  handlers.APIResponse "Bad request or self-subscription"
// @Failure     404  {object}  handlers.APIResponse "Channel not found"
// @Router      /subscriptions/{channelId} [post]
func (h *Handlers) ToggleSubscription(c *gin.Context) {
	channelID := c.Param("channelId")
	if _, err := uuid.Parse(channelID); err != nil {
		fail(c, http.StatusBadRequest, "channel id must be a UUID")
		return
	}
	subscribed, err := h.subscriptionSvc.Toggle(c.Request.Context(), userID(c), channelID)
	if err != nil {
		failErr(c, err)
		return
	}
	msg := "unsubscribed successfully"
	if subscribed {
		msg = "subscribed successfully"
	}
	respond(c, toggleStatus(subscribed), gin.H{"subscribed": subscribed}, msg)
}

// ListSubscribedChannels godoc
// @ID          listSubscribedChannels
// @Summary     List the channels the caller is subscribed to
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.APIResponse
// @Router      /subscriptions/subscribed [get]
func (h *Handlers) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionSvc.SubscribedChannels(c.Request.Context(), userID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, channels, "subscribed channels fetched successfully")
}

// ListChannelSubscribers godoc
// @ID          listChannelSubscribers
// @Summary     List a channel's subscribers
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
//
// @Param       channelId  path  string  true  "Channel (user) ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Channel not found"
// @Router      /subscriptions/{channelId}/subscribers [get]
func (h *Handlers) ListChannelSubscribers(c *gin.Context) {
	channelID := c.Param("channelId")
	if _, err := uuid.Parse(channelID); err != nil {
		fail(c, http.StatusBadRequest, "channel id must be a UUID")
		return
	}
	subscribers, err := h.subscriptionSvc.Subscribers(c.Request.Context(), channelID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, subscribers, "subscribers fetched successfully")
}
