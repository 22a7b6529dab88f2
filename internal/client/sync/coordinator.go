// Package sync holds the coordinator that decides, per operation,
// whether to consult the authoritative service or the local cache, and
// keeps the two convergent once connectivity returns.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/memoshare/memoshare/internal/client/access"
	"github.com/memoshare/memoshare/internal/client/cache"
	"github.com/memoshare/memoshare/internal/client/model"
	"github.com/memoshare/memoshare/internal/client/remote"
	"github.com/memoshare/memoshare/internal/client/search"
)

// Remote is the surface of the authoritative service the coordinator
// drives. internal/client/remote provides the HTTP implementation.
type Remote interface {
	ListMine(ctx context.Context, token string) ([]model.Memo, error)
	ListShared(ctx context.Context, token string) ([]model.Memo, error)
	Get(ctx context.Context, token, id string) (model.Memo, error)
	Create(ctx context.Context, token string, fields remote.MemoFields) (model.Memo, error)
	Update(ctx context.Context, token, id string, fields remote.MemoFields) (model.Memo, error)
	Delete(ctx context.Context, token, id string) error
	Grant(ctx context.Context, token, memoID, userID string) error
	Revoke(ctx context.Context, token, memoID, userID string) error
}

// Connectivity answers whether the remote service is worth trying.
type Connectivity interface {
	Online(ctx context.Context) bool
}

type Coordinator struct {
	remote Remote
	cache  *cache.Store
	probe  Connectivity
	index  *search.Index
}

func NewCoordinator(remote Remote, store *cache.Store, probe Connectivity, index *search.Index) *Coordinator {
	return &Coordinator{
		remote: remote,
		cache:  store,
		probe:  probe,
		index:  index,
	}
}

// MyMemos lists the memos the session's user authored. Remote results
// are written through into the cache; if the service cannot answer, the
// cached copies are served instead.
func (c *Coordinator) MyMemos(ctx context.Context, session Session) ([]model.Memo, error) {
	if c.probe.Online(ctx) {
		memos, err := c.remote.ListMine(ctx, session.Token)
		if err == nil {
			c.reconcileAll(ctx, memos)
			return memos, nil
		}
		if !recoverable(err) {
			return nil, err
		}
	}

	return c.cache.MemosByAuthor(ctx, session.UserID)
}

// SharedMemos lists the memos visible to the session's user through
// shares. While online, a grant record is mirrored locally for every
// memo the service lists, so offline reads can still answer from
// whatever grants were last synced.
func (c *Coordinator) SharedMemos(ctx context.Context, session Session) ([]model.Memo, error) {
	if c.probe.Online(ctx) {
		memos, err := c.remote.ListShared(ctx, session.Token)
		if err == nil {
			for _, memo := range memos {
				c.reconcile(ctx, memo)
				if memo.AuthorID == session.UserID {
					continue
				}
				grant := model.ShareGrant{MemoID: memo.ID, GranteeID: session.UserID, GrantedAt: time.Now().UTC()}
				if err := c.cache.UpsertGrant(ctx, grant); err != nil {
					log.Printf("Error caching grant for memo %s: %v\n", memo.ID, err)
				}
			}
			return memos, nil
		}
		if !recoverable(err) {
			return nil, err
		}
	}

	return c.cache.SharedWith(ctx, session.UserID)
}

// Memo returns a single memo the session's user may read. A forbidden
// answer is reported as not found, so the call never confirms the
// existence of somebody else's memo.
func (c *Coordinator) Memo(ctx context.Context, session Session, id string) (model.Memo, error) {
	if c.probe.Online(ctx) {
		memo, err := c.remote.Get(ctx, session.Token, id)
		if err == nil {
			c.reconcile(ctx, memo)
			return memo, nil
		}
		if errors.Is(err, model.ErrForbidden) {
			return model.Memo{}, model.ErrNotFound
		}
		if !recoverable(err) {
			return model.Memo{}, err
		}
	}

	memo, err := c.cache.MemoByID(ctx, id)
	if err != nil {
		return model.Memo{}, err
	}
	grants, err := c.cache.GrantsForMemo(ctx, id)
	if err != nil {
		return model.Memo{}, err
	}
	if !access.CanRead(memo, grants, session.UserID) {
		return model.Memo{}, model.ErrNotFound
	}
	return memo, nil
}

// CreateMemo stores a new memo authored by the session's user. When the
// service cannot be reached the memo is created locally with a fresh
// identifier; it stays local-only until a later remote write touches it.
func (c *Coordinator) CreateMemo(ctx context.Context, session Session, title, content string) (model.Memo, error) {
	if title == "" {
		return model.Memo{}, fmt.Errorf("%w: title cannot be empty", model.ErrValidation)
	}

	if c.probe.Online(ctx) {
		memo, err := c.remote.Create(ctx, session.Token, remote.MemoFields{Title: title, Content: content})
		if err == nil {
			c.reconcile(ctx, memo)
			return memo, nil
		}
		if !recoverable(err) {
			return model.Memo{}, err
		}
	}

	now := time.Now().UTC()
	memo := model.Memo{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		AuthorID:   session.UserID,
		AuthorName: session.DisplayName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.cache.UpsertMemo(ctx, memo); err != nil {
		return model.Memo{}, err
	}
	c.indexMemo(memo)
	return memo, nil
}

// UpdateMemo overwrites the title and content of a memo the session's
// user authored.
func (c *Coordinator) UpdateMemo(ctx context.Context, session Session, id, title, content string) (model.Memo, error) {
	if title == "" {
		return model.Memo{}, fmt.Errorf("%w: title cannot be empty", model.ErrValidation)
	}

	if c.probe.Online(ctx) {
		memo, err := c.remote.Update(ctx, session.Token, id, remote.MemoFields{Title: title, Content: content})
		if err == nil {
			c.reconcile(ctx, memo)
			return memo, nil
		}
		if !recoverable(err) {
			return model.Memo{}, err
		}
	}

	memo, err := c.cache.MemoByID(ctx, id)
	if err != nil {
		return model.Memo{}, err
	}
	if !access.CanWrite(memo, session.UserID) {
		return model.Memo{}, model.ErrForbidden
	}

	memo.Title = title
	memo.Content = content
	memo.UpdatedAt = time.Now().UTC()
	if err := c.cache.UpsertMemo(ctx, memo); err != nil {
		return model.Memo{}, err
	}
	c.indexMemo(memo)
	return memo, nil
}

// DeleteMemo removes a memo the session's user authored, together with
// its grants, both remotely and from the cache.
func (c *Coordinator) DeleteMemo(ctx context.Context, session Session, id string) error {
	if c.probe.Online(ctx) {
		err := c.remote.Delete(ctx, session.Token, id)
		if err == nil {
			return c.forget(ctx, id)
		}
		if !recoverable(err) {
			return err
		}
	}

	memo, err := c.cache.MemoByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanWrite(memo, session.UserID) {
		return model.ErrForbidden
	}
	return c.forget(ctx, id)
}

// ShareMemo grants another user read access to a memo. Grants drive
// somebody else's visibility, so there is no offline fallback: without
// connectivity the call fails with ErrOfflineOnly. Granting to oneself
// is a no-op.
func (c *Coordinator) ShareMemo(ctx context.Context, session Session, memoID, granteeID string) error {
	if granteeID == session.UserID {
		return nil
	}
	if !c.probe.Online(ctx) {
		return model.ErrOfflineOnly
	}

	if err := c.remote.Grant(ctx, session.Token, memoID, granteeID); err != nil {
		if errors.Is(err, model.ErrUnreachable) {
			return fmt.Errorf("%w: %v", model.ErrOfflineOnly, err)
		}
		return err
	}

	// Mirror the new grant so the derived shared flag stays consistent
	// locally as well.
	grant := model.ShareGrant{MemoID: memoID, GranteeID: granteeID, GrantedAt: time.Now().UTC()}
	if err := c.cache.UpsertGrant(ctx, grant); err != nil {
		log.Printf("Error caching grant for memo %s: %v\n", memoID, err)
		return nil
	}
	if memo, err := c.cache.MemoByID(ctx, memoID); err == nil && !memo.IsShared {
		memo.IsShared = true
		if err := c.cache.UpsertMemo(ctx, memo); err != nil {
			log.Printf("Error caching memo %s: %v\n", memoID, err)
		}
	}
	return nil
}

// UnshareMemo revokes a previously granted share. Like ShareMemo it is
// remote-only.
func (c *Coordinator) UnshareMemo(ctx context.Context, session Session, memoID, granteeID string) error {
	if !c.probe.Online(ctx) {
		return model.ErrOfflineOnly
	}

	if err := c.remote.Revoke(ctx, session.Token, memoID, granteeID); err != nil {
		if errors.Is(err, model.ErrUnreachable) {
			return fmt.Errorf("%w: %v", model.ErrOfflineOnly, err)
		}
		return err
	}

	if err := c.cache.DeleteGrant(ctx, memoID, granteeID); err != nil {
		log.Printf("Error dropping cached grant for memo %s: %v\n", memoID, err)
		return nil
	}
	remaining, err := c.cache.GrantsForMemo(ctx, memoID)
	if err != nil {
		return nil
	}
	if memo, err := c.cache.MemoByID(ctx, memoID); err == nil && memo.IsShared != (len(remaining) > 0) {
		memo.IsShared = len(remaining) > 0
		if err := c.cache.UpsertMemo(ctx, memo); err != nil {
			log.Printf("Error caching memo %s: %v\n", memoID, err)
		}
	}
	return nil
}

// SearchMemos runs a full-text query over the locally cached memos and
// returns the ones the session's user may read, best match first.
func (c *Coordinator) SearchMemos(ctx context.Context, session Session, keywords string) ([]model.Memo, error) {
	ids, err := c.index.Search(keywords)
	if err != nil {
		return nil, err
	}

	memos := make([]model.Memo, 0, len(ids))
	for _, id := range ids {
		memo, err := c.cache.MemoByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		grants, err := c.cache.GrantsForMemo(ctx, id)
		if err != nil {
			return nil, err
		}
		if access.CanRead(memo, grants, session.UserID) {
			memos = append(memos, memo)
		}
	}
	return memos, nil
}

// reconcile writes an authoritative memo through into the cache,
// last writer wins by UpdatedAt. On equal timestamps the remote copy
// wins, the server being the source of truth.
func (c *Coordinator) reconcile(ctx context.Context, memo model.Memo) {
	local, err := c.cache.MemoByID(ctx, memo.ID)
	if err == nil && local.UpdatedAt.After(memo.UpdatedAt) {
		return
	}
	if err := c.cache.UpsertMemo(ctx, memo); err != nil {
		log.Printf("Error caching memo %s: %v\n", memo.ID, err)
		return
	}
	c.indexMemo(memo)
}

func (c *Coordinator) reconcileAll(ctx context.Context, memos []model.Memo) {
	for _, memo := range memos {
		c.reconcile(ctx, memo)
	}
}

func (c *Coordinator) forget(ctx context.Context, id string) error {
	if err := c.cache.DeleteMemoCascade(ctx, id); err != nil {
		return err
	}
	if err := c.index.Remove(id); err != nil {
		log.Printf("Error removing memo %s from the search index: %v\n", id, err)
	}
	return nil
}

func (c *Coordinator) indexMemo(memo model.Memo) {
	if err := c.index.Add(memo); err != nil {
		log.Printf("Error indexing memo %s: %v\n", memo.ID, err)
	}
}

// recoverable tells whether a remote failure may be absorbed by falling
// back to the cache. Connectivity loss and unexpected server failures
// degrade gracefully; authentication, authorization, validation and
// conflict answers carry meaning and always reach the caller.
func recoverable(err error) bool {
	return errors.Is(err, model.ErrUnreachable) || errors.Is(err, model.ErrServer)
}
