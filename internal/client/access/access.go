// Package access holds the pure decision rules for who may see or touch
// a memo. It performs no I/O; callers hand it whatever grant records
// they hold and translate a negative answer into the appropriate error.
package access

import "github.com/memoshare/memoshare/internal/client/model"

// CanRead reports whether the given user may read the memo: they wrote
// it, or one of the grants names them.
func CanRead(memo model.Memo, grants []model.ShareGrant, userID string) bool {
	if memo.AuthorID == userID {
		return true
	}
	for _, grant := range grants {
		if grant.MemoID == memo.ID && grant.GranteeID == userID {
			return true
		}
	}
	return false
}

// CanWrite reports whether the given user may update or delete the memo.
// Only the author ever may, no matter how widely the memo is shared.
func CanWrite(memo model.Memo, userID string) bool {
	return memo.AuthorID == userID
}

// CanGrant reports whether userID may grant the given user read access
// to the memo. The caller is expected to resolve the grantee beforehand;
// a nil grantee means no such user exists. Granting to the author
// themselves is never necessary, so it is not allowed here; callers
// treat that case as an idempotent no-op rather than an error.
func CanGrant(memo model.Memo, userID string, grantee *model.User) bool {
	if memo.AuthorID != userID {
		return false
	}
	if grantee == nil {
		return false
	}
	return grantee.ID != memo.AuthorID
}
