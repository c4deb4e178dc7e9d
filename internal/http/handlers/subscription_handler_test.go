package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/services"
)

type stubSubscriptionService struct {
	toggleResult bool
	toggleErr    error
	lastCaller   string
	lastChannel  string
}

func (s *stubSubscriptionService) Toggle(_ context.Context, subscriberID, channelID string) (bool, error) {
	s.lastCaller, s.lastChannel = subscriberID, channelID
	return s.toggleResult, s.toggleErr
}

func (s *stubSubscriptionService) Subscribers(_ context.Context, _ string) ([]domain.User, error) {
	return []domain.User{{ID: "u2", Username: "bob"}}, nil
}

func (s *stubSubscriptionService) SubscribedChannels(_ context.Context, _ string) ([]domain.User, error) {
	return nil, nil
}

func newSubscriptionRouter(svc SubscriptionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, nil, nil, nil, nil, nil, svc, nil)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u1"); c.Next() })
	r.POST("/subscriptions/:channelId", h.ToggleSubscription)
	r.GET("/subscriptions/subscribed", h.ListSubscribedChannels)
	r.GET("/subscriptions/:channelId/subscribers", h.ListChannelSubscribers)
	return r
}

func TestToggleSubscription_ReportsState(t *testing.T) {
	svc := &stubSubscriptionService{toggleResult: true}
	r := newSubscriptionRouter(svc)

	channel := uuid.NewString()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/subscriptions/"+channel, nil))

	// Creating the subscription answers 201; removing it would answer 200.
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastCaller != "u1" || svc.lastChannel != channel {
		t.Fatalf("toggle args: caller=%q channel=%q", svc.lastCaller, svc.lastChannel)
	}
	var env struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil || !env.Data["subscribed"] {
		t.Fatalf("payload: %s (err=%v)", w.Body.String(), err)
	}
}

func TestToggleSubscription_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrSelfSubscription, http.StatusBadRequest},
		{services.ErrChannelNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		r := newSubscriptionRouter(&stubSubscriptionService{toggleErr: tc.err})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/subscriptions/"+uuid.NewString(), nil))
		if w.Code != tc.want {
			t.Fatalf("%v: status = %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestToggleSubscription_RejectsNonUUID(t *testing.T) {
	r := newSubscriptionRouter(&stubSubscriptionService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/subscriptions/nope", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListChannelSubscribers(t *testing.T) {
	r := newSubscriptionRouter(&stubSubscriptionService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/subscriptions/"+uuid.NewString()+"/subscribers", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var env struct {
		Data []domain.User `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil || len(env.Data) != 1 || env.Data[0].Username != "bob" {
		t.Fatalf("payload: %s (err=%v)", w.Body.String(), err)
	}
}
