// Package metadata persists small string key/value pairs of the local
// session (access token, cached profile, role override) in the
// session_metadata table.
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "token", tok)
//	tok, ok, _ := repo.Get(ctx, "token")
package metadata
