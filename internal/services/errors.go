// Package services defines the business logic for videos, comments, tweets,
// likes, playlists, subscriptions, dashboards, and accounts. This file
// centralizes service-level error values so they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into envelope messages and HTTP status codes happens at the
// handler layer.
package services

import "errors"

// Not-found errors, one per entity so handlers can phrase messages precisely.
var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrTweetNotFound    = errors.New("tweet not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrUserNotFound     = errors.New("user not found")
)

// Validation and authorization errors.
var (
	// ErrNotOwner is returned when the caller is not the entity's owner on a
	// mutate or delete operation.
	ErrNotOwner = errors.New("caller does not own this resource")

	// ErrEmptyContent is returned when a comment or tweet body is missing or
	// blank.
	ErrEmptyContent = errors.New("content is empty")

	// ErrEmptyTitle is returned when a video is published without a title.
	ErrEmptyTitle = errors.New("title is empty")

	// ErrEmptyName is returned when a playlist is created without a name.
	ErrEmptyName = errors.New("name is empty")

	// ErrSelfSubscription rejects a user subscribing to their own channel.
	ErrSelfSubscription = errors.New("cannot subscribe to own channel")

	// ErrDuplicatePlaylistVideo rejects adding a video already in a playlist.
	ErrDuplicatePlaylistVideo = errors.New("video already in playlist")
)

// Account errors.
var (
	// ErrAccountExists is returned when the username or email is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials is returned on a failed login. The message is
	// deliberately unspecific about which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrUploadFailed wraps object-storage failures during video publishing so
// handlers can map them to a 500 without leaking storage internals.
var ErrUploadFailed = errors.New("media upload failed")
