// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides JWT tokens and password hashing for admin accounts.

# Tokens

Tokens are HS256 JWTs carrying the admin's ID and username, valid for
24 hours (TokenTTL):

	token, err := auth.GenerateToken(secret, admin.ID, admin.Username)
	claims, err := auth.ValidateToken(secret, token)

ValidateToken rejects tokens signed with any non-HMAC method, bad
signatures (ErrInvalidToken), and expired tokens (ErrTokenExpired).

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

Only the hash is ever stored.
*/
package auth
