package services

import (
	"context"
	"errors"
	"testing"
)

func TestSubscriptionToggle_Involution(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svcUser(t, db, "u2", "bob")
	svc := NewSubscriptionService(db)

	subscribed, err := svc.Toggle(context.Background(), "u1", "u2")
	if err != nil || !subscribed {
		t.Fatalf("first toggle: subscribed=%v err=%v", subscribed, err)
	}
	subscribed, err = svc.Toggle(context.Background(), "u1", "u2")
	if err != nil || subscribed {
		t.Fatalf("second toggle: subscribed=%v err=%v", subscribed, err)
	}
}

func TestSubscriptionToggle_Rejections(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewSubscriptionService(db)

	if _, err := svc.Toggle(context.Background(), "u1", "u1"); !errors.Is(err, ErrSelfSubscription) {
		t.Fatalf("self: want ErrSelfSubscription, got %v", err)
	}
	if _, err := svc.Toggle(context.Background(), "u1", "missing"); !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("missing channel: want ErrChannelNotFound, got %v", err)
	}
}

func TestSubscriptionListings(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svcUser(t, db, "u2", "bob")
	svcUser(t, db, "u3", "carol")
	svc := NewSubscriptionService(db)
	_, _ = svc.Toggle(context.Background(), "u2", "u1")
	_, _ = svc.Toggle(context.Background(), "u3", "u1")
	_, _ = svc.Toggle(context.Background(), "u1", "u2")

	subs, err := svc.Subscribers(context.Background(), "u1")
	if err != nil || len(subs) != 2 {
		t.Fatalf("Subscribers: len=%d err=%v", len(subs), err)
	}
	for _, u := range subs {
		if u.Username == "" || u.PasswordHash != "" {
			t.Fatalf("subscriber summary leaks or is empty: %+v", u)
		}
	}

	chans, err := svc.SubscribedChannels(context.Background(), "u1")
	if err != nil || len(chans) != 1 || chans[0].Username != "bob" {
		t.Fatalf("SubscribedChannels: got=%+v err=%v", chans, err)
	}
}
