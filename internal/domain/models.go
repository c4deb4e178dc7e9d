// Package domain defines the persistence models for users, videos, comments,
// tweets, likes, playlists, and subscriptions. These types are mapped with
// GORM and form the core data layer of the platform.
package domain

import "time"

// User is an account on the platform. Users own videos, tweets, comments,
// playlists, and appear on both sides of the subscription graph.
//
// PasswordHash holds a bcrypt digest and is never serialized.
type User struct {
	ID             string    `json:"id"                        gorm:"type:char(36);primaryKey"`
	Username       string    `json:"username"                  gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Email          string    `json:"email"                     gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash   string    `json:"-"                         gorm:"type:varchar(128);not null"`
	ProfilePicture string    `json:"profile_picture,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Video is an uploaded video. The media and thumbnail URLs point at object
// storage; ownership is fixed at creation via UploaderID.
//
// Uploader is populated on single-video fetches only.
type Video struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title"         gorm:"type:varchar(255);not null"`
	Description  string    `json:"description"   gorm:"type:text"`
	VideoURL     string    `json:"video_url"     gorm:"type:text;not null"`
	ThumbnailURL string    `json:"thumbnail_url" gorm:"type:text"`
	Views        int64     `json:"views"         gorm:"not null;default:0"`
	IsPublished  bool      `json:"is_published"  gorm:"not null;default:true"`
	UploaderID   string    `json:"uploader_id"   gorm:"type:char(36);not null;index:idx_videos_uploader"`
	CreatedAt    time.Time `json:"created_at"    gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`

	Uploader *User `json:"uploader,omitempty" gorm:"foreignKey:UploaderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Video.
func (Video) TableName() string { return "videos" }

// Comment is a user's comment on a video.
type Comment struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	VideoID   string    `json:"video_id"   gorm:"type:char(36);not null;index:idx_comments_video,priority:1"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_comments_video,priority:2"`
	UpdatedAt time.Time `json:"updated_at"`

	// User carries the author summary on listings.
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	// Video is the parent; comments are cascade-deleted with it.
	Video *Video `json:"-" gorm:"foreignKey:VideoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// Tweet is a short text post by a user, independent of any video.
type Tweet struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	AuthorID  string    `json:"author_id"  gorm:"type:char(36);not null;index:idx_tweets_author,priority:1"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_tweets_author,priority:2"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Tweet.
func (Tweet) TableName() string { return "tweets" }

// Like associates a user with exactly one target: a video, a comment, or a
// tweet. Exactly one of the target columns is non-NULL per row.
//
// Uniqueness of a (user, target) pair is enforced by three composite unique
// indexes. NULL columns compare distinct under SQLite and Postgres unique
// indexes, so each index only constrains rows whose target column is set.
// This is the backstop that makes the toggle safe under concurrent requests.
//
// VideoOwnerID denormalizes the liked video's uploader so channel dashboards
// can count received likes without a join.
type Like struct {
	ID           string    `json:"id"                       gorm:"type:char(36);primaryKey"`
	UserID       string    `json:"user_id"                  gorm:"type:char(36);not null;index;uniqueIndex:ux_likes_user_video,priority:1;uniqueIndex:ux_likes_user_comment,priority:1;uniqueIndex:ux_likes_user_tweet,priority:1"`
	VideoID      *string   `json:"video_id,omitempty"       gorm:"type:char(36);uniqueIndex:ux_likes_user_video,priority:2"`
	CommentID    *string   `json:"comment_id,omitempty"     gorm:"type:char(36);uniqueIndex:ux_likes_user_comment,priority:2"`
	TweetID      *string   `json:"tweet_id,omitempty"       gorm:"type:char(36);uniqueIndex:ux_likes_user_tweet,priority:2"`
	VideoOwnerID string    `json:"video_owner_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Video is populated when listing a user's liked videos.
	Video *Video `json:"video,omitempty" gorm:"foreignKey:VideoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Like.
func (Like) TableName() string { return "likes" }

// Playlist is a named, ordered collection of videos owned by a user.
// Membership lives in playlist_videos; Videos is filled by the repository
// when a single playlist is fetched.
type Playlist struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name"        gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	OwnerID     string    `json:"owner_id"    gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Videos []Video `json:"videos,omitempty" gorm:"-"`
}

// TableName returns the database table name for Playlist.
func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo is a membership row linking a playlist to a video.
// Position preserves insertion order; the unique index rejects duplicates.
type PlaylistVideo struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	PlaylistID string    `json:"playlist_id" gorm:"type:char(36);not null;uniqueIndex:ux_playlist_video,priority:1"`
	VideoID    string    `json:"video_id"    gorm:"type:char(36);not null;uniqueIndex:ux_playlist_video,priority:2"`
	Position   int       `json:"position"    gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	Playlist *Playlist `json:"-" gorm:"foreignKey:PlaylistID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Video    *Video    `json:"-" gorm:"foreignKey:VideoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PlaylistVideo.
func (PlaylistVideo) TableName() string { return "playlist_videos" }

// Subscription is an edge in the follows-graph: SubscriberID follows
// ChannelID. Both sides reference users; self-edges are rejected in the
// service layer and duplicate edges by the unique index.
type Subscription struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	SubscriberID string    `json:"subscriber_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_subs_pair,priority:1"`
	ChannelID    string    `json:"channel_id"    gorm:"type:char(36);not null;index;uniqueIndex:ux_subs_pair,priority:2"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Subscriber *User `json:"subscriber,omitempty" gorm:"foreignKey:SubscriberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Channel    *User `json:"channel,omitempty"    gorm:"foreignKey:ChannelID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Subscription.
func (Subscription) TableName() string { return "subscriptions" }
