package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/positnow_mobile/appctx"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

// Session is the signed-in state of one phone: the upstream bearer token and the
// username it was verified for. It is created once at login and handed explicitly
// to every upstream call.
type Session struct {
	ID            string    `json:"id"`
	UpstreamToken string    `json:"upstreamToken"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewSession(upstreamToken string, username string) *Session {
	return &Session{
		ID:            uuid.NewString(),
		UpstreamToken: upstreamToken,
		Username:      username,
		CreatedAt:     time.Now().UTC(),
	}
}

func sessionKey(id string) string {
	return "Session:" + id
}

func SaveSession(ctx context.Context, sess *Session, ttl time.Duration) error {
	return config.SetRedisObject(ctx, sessionKey(sess.ID), sess, ttl)
}

// LoadSession returns (nil, nil) when the session expired or never existed.
func LoadSession(ctx context.Context, id string) (*Session, error) {
	var sess Session
	exists, err := config.GetRedisObject(ctx, sessionKey(id), &sess)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return &sess, nil
}

func DeleteSession(ctx context.Context, id string) error {
	return config.RemoveRedisKey(ctx, sessionKey(id))
}

func WithSession(ctx context.Context, sess *Session) context.Context {
	ctx = appctx.Set(ctx, appctx.ContextKeySession, sess)
	ctx = utils.SetSessionIdInContext(ctx, sess.ID)
	return utils.SetUsernameInContext(ctx, sess.Username)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(appctx.ContextKeySession).(*Session)
	return sess, ok && sess != nil
}
